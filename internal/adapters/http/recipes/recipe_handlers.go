// Package recipes содержит HTTP обработчики для работы с рецептами и избранным.
package recipes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"recipeshare/internal/adapters/http/dto"
	"recipeshare/internal/adapters/http/middleware"
	"recipeshare/internal/app"
	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/api"
	"recipeshare/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreateRecipe   = "recipe handler: create"
	LogHandlerGetRecipe      = "recipe handler: get"
	LogHandlerListRecipes    = "recipe handler: list public"
	LogHandlerUpdateRecipe   = "recipe handler: update"
	LogHandlerDeleteRecipe   = "recipe handler: delete"
	LogHandlerAddFavorite    = "recipe handler: add favorite"
	LogHandlerRemoveFavorite = "recipe handler: remove favorite"
	LogHandlerListFavorites  = "recipe handler: list favorites"

	ErrorInvalidRequest       = "invalid request"
	ErrorUnauthorized         = "unauthorized"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternal             = "internal server error"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// statusForError отображает доменные ошибки на HTTP статусы.
func statusForError(err error) int {
	switch {
	case errors.Is(err, entities.ErrEmptyRecipeTitle),
		errors.Is(err, entities.ErrEmptyIngredients),
		errors.Is(err, entities.ErrEmptyInstructions):
		return http.StatusBadRequest
	case errors.Is(err, app.ErrRecipeAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrRecipeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageForError скрывает внутренние подробности для ответов 5xx.
func messageForError(err error, statusCode int) string {
	if statusCode == http.StatusInternalServerError {
		return ErrorInternal
	}
	return err.Error()
}

// recipeIDParam возвращает копию параметра пути recipe_id. fiber отдает
// параметры как срезы переиспользуемого буфера запроса, поэтому значение
// нельзя передавать дальше обработчика без копирования.
func recipeIDParam(ctx fiber.Ctx) string {
	return strings.Clone(ctx.Params("recipe_id"))
}

// Handler содержит HTTP обработчики рецептов.
type Handler struct {
	recipeUseCase api.RecipeUseCase
}

// NewHandler создает новый экземпляр обработчика рецептов.
func NewHandler(recipeUseCase api.RecipeUseCase) *Handler {
	return &Handler{
		recipeUseCase: recipeUseCase,
	}
}

// CreateRecipe обрабатывает запрос на создание рецепта.
func (h *Handler) CreateRecipe(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateRecipe)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.RecipeRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	recipe, err := h.recipeUseCase.CreateRecipe(requestCtx, user.ID, req.Title, req.Ingredients, req.Instructions, req.IsPublic)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.RecipeFromEntity(recipe)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetRecipe обрабатывает запрос на получение рецепта по идентификатору.
func (h *Handler) GetRecipe(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetRecipe)

	recipeID := recipeIDParam(ctx)
	if recipeID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "recipe id is required")
	}

	recipe, err := h.recipeUseCase.GetRecipe(requestCtx, recipeID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.RecipeFromEntity(recipe)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPublicRecipes обрабатывает запрос на список публичных рецептов.
func (h *Handler) ListPublicRecipes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListRecipes)

	recipes, err := h.recipeUseCase.ListPublicRecipes(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.RecipesFromEntities(recipes)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateRecipe обрабатывает запрос на обновление рецепта.
func (h *Handler) UpdateRecipe(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateRecipe)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	recipeID := recipeIDParam(ctx)
	if recipeID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "recipe id is required")
	}

	var req dto.RecipeRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	recipe := &entities.Recipe{
		ID:           recipeID,
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		IsPublic:     req.IsPublic,
	}

	updated, err := h.recipeUseCase.UpdateRecipe(requestCtx, user.ID, recipe)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.RecipeFromEntity(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteRecipe обрабатывает запрос на удаление рецепта.
func (h *Handler) DeleteRecipe(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteRecipe)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	recipeID := recipeIDParam(ctx)
	if recipeID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "recipe id is required")
	}

	if err := h.recipeUseCase.DeleteRecipe(requestCtx, user.ID, recipeID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": "recipe deleted",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// AddFavorite обрабатывает запрос на добавление рецепта в избранное.
// Повторное добавление уже избранного рецепта не является ошибкой.
func (h *Handler) AddFavorite(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddFavorite)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	recipeID := recipeIDParam(ctx)
	if recipeID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "recipe id is required")
	}

	outcome, err := h.recipeUseCase.AddFavorite(requestCtx, user.ID, recipeID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.FavoriteResponse{
		Message:  string(outcome),
		RecipeID: recipeID,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RemoveFavorite обрабатывает запрос на удаление рецепта из избранного.
func (h *Handler) RemoveFavorite(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRemoveFavorite)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	recipeID := recipeIDParam(ctx)
	if recipeID == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "recipe id is required")
	}

	outcome, err := h.recipeUseCase.RemoveFavorite(requestCtx, user.ID, recipeID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.FavoriteResponse{
		Message:  string(outcome),
		RecipeID: recipeID,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListFavorites обрабатывает запрос на список избранных рецептов пользователя.
func (h *Handler) ListFavorites(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListFavorites)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	recipes, err := h.recipeUseCase.ListFavorites(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.RecipesFromEntities(recipes)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
