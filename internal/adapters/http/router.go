// Package http содержит компоненты для HTTP сервера.
package http

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"recipeshare/internal/adapters/http/auth"
	"recipeshare/internal/adapters/http/middleware"
	"recipeshare/internal/adapters/http/recipes"
	"recipeshare/internal/ports/api"
	"recipeshare/internal/ports/repositories"
	svc "recipeshare/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	userUseCase api.UserUseCase,
	recipeUseCase api.RecipeUseCase,
	tokenService svc.TokenService,
	userRepo repositories.UserRepository,
	requestTimeout time.Duration,
) {
	authHandler := auth.NewHandler(authUseCase, userUseCase)
	recipeHandler := recipes.NewHandler(recipeUseCase)

	requireAuth := middleware.NewAuthMiddleware(tokenService, userRepo)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestContextMiddleware(requestTimeout))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Профиль текущего пользователя.
	userRoutes := apiV1.Group("/users")
	userRoutes.Get("/me", authHandler.GetProfile, requireAuth)
	userRoutes.Patch("/me", authHandler.UpdateProfile, requireAuth)

	// Маршруты рецептов: чтение публичное, изменение и избранное требуют
	// авторизации. Статический маршрут favorites регистрируется раньше
	// параметрического :recipe_id.
	recipeRoutes := apiV1.Group("/recipes")
	recipeRoutes.Get("/favorites", recipeHandler.ListFavorites, requireAuth)
	recipeRoutes.Get("/", recipeHandler.ListPublicRecipes)
	recipeRoutes.Get("/:recipe_id", recipeHandler.GetRecipe)
	recipeRoutes.Post("/", recipeHandler.CreateRecipe, requireAuth)
	recipeRoutes.Put("/:recipe_id", recipeHandler.UpdateRecipe, requireAuth)
	recipeRoutes.Delete("/:recipe_id", recipeHandler.DeleteRecipe, requireAuth)
	recipeRoutes.Post("/:recipe_id/favorite", recipeHandler.AddFavorite, requireAuth)
	recipeRoutes.Delete("/:recipe_id/favorite", recipeHandler.RemoveFavorite, requireAuth)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
