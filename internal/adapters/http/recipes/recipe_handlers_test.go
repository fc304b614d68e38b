package recipes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/adapters/http/middleware"
	"recipeshare/internal/adapters/http/recipes"
	"recipeshare/internal/adapters/memory"
	"recipeshare/internal/adapters/services"
	"recipeshare/internal/app"
	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/valueobjects"
	svc "recipeshare/internal/ports/services"
)

type recipeTestEnv struct {
	app          *fiber.App
	tokenService svc.TokenService
}

func newRecipeApp(t *testing.T) (*recipeTestEnv, string) {
	t.Helper()

	tokenService, err := services.NewJWT("test-secret-key-12345", "HS256", 30*time.Minute)
	require.NoError(t, err)
	userRepo := memory.NewUserRepository()
	recipeRepo := memory.NewRecipeRepository()

	email, err := valueobjects.NewEmail("author@example.com")
	require.NoError(t, err)
	password, err := valueobjects.NewPassword("password1")
	require.NoError(t, err)
	author, err := entities.NewUser("author", email, password)
	require.NoError(t, err)
	created, err := userRepo.Create(t.Context(), author)
	require.NoError(t, err)

	handler := recipes.NewHandler(app.NewRecipeUseCase(recipeRepo, nil))
	requireAuth := middleware.NewAuthMiddleware(tokenService, userRepo)

	fiberApp := fiber.New()
	group := fiberApp.Group("/api/v1/recipes")
	group.Get("/favorites", handler.ListFavorites, requireAuth)
	group.Get("/", handler.ListPublicRecipes)
	group.Get("/:recipe_id", handler.GetRecipe)
	group.Post("/", handler.CreateRecipe, requireAuth)
	group.Put("/:recipe_id", handler.UpdateRecipe, requireAuth)
	group.Delete("/:recipe_id", handler.DeleteRecipe, requireAuth)
	group.Post("/:recipe_id/favorite", handler.AddFavorite, requireAuth)
	group.Delete("/:recipe_id/favorite", handler.RemoveFavorite, requireAuth)

	token, _, err := tokenService.Issue(t.Context(), created.ID)
	require.NoError(t, err)

	return &recipeTestEnv{app: fiberApp, tokenService: tokenService}, token
}

func (e *recipeTestEnv) do(t *testing.T, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (e *recipeTestEnv) createRecipe(t *testing.T, token string, isPublic bool) string {
	t.Helper()

	status, raw := e.do(t, http.MethodPost, "/api/v1/recipes/", token, map[string]any{
		"title":        "Bread",
		"ingredients":  []string{"flour", "water"},
		"instructions": []string{"mix", "bake"},
		"is_public":    isPublic,
	})
	require.Equal(t, http.StatusCreated, status)

	var created map[string]any
	require.NoError(t, json.Unmarshal(raw, &created))
	recipeID, ok := created["id"].(string)
	require.True(t, ok)
	return recipeID
}

func TestRecipeEndpoints(t *testing.T) {
	env, token := newRecipeApp(t)
	recipeID := env.createRecipe(t, token, true)

	t.Run("public listing is open", func(t *testing.T) {
		status, raw := env.do(t, http.MethodGet, "/api/v1/recipes/", "", nil)
		assert.Equal(t, http.StatusOK, status)

		var listing []map[string]any
		require.NoError(t, json.Unmarshal(raw, &listing))
		assert.Len(t, listing, 1)
	})

	t.Run("get by id is open", func(t *testing.T) {
		status, raw := env.do(t, http.MethodGet, "/api/v1/recipes/"+recipeID, "", nil)
		assert.Equal(t, http.StatusOK, status)

		var recipe map[string]any
		require.NoError(t, json.Unmarshal(raw, &recipe))
		assert.Equal(t, "Bread", recipe["title"])
	})

	t.Run("missing recipe yields not found", func(t *testing.T) {
		status, _ := env.do(t, http.MethodGet, "/api/v1/recipes/missing-id", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("create requires a token", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/api/v1/recipes/", "", map[string]any{"title": "X"})
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("update by author", func(t *testing.T) {
		status, raw := env.do(t, http.MethodPut, "/api/v1/recipes/"+recipeID, token, map[string]any{
			"title":     "Sourdough",
			"is_public": true,
		})
		assert.Equal(t, http.StatusOK, status)

		var recipe map[string]any
		require.NoError(t, json.Unmarshal(raw, &recipe))
		assert.Equal(t, "Sourdough", recipe["title"])
	})
}

func TestFavoriteEndpoints(t *testing.T) {
	env, token := newRecipeApp(t)
	recipeID := env.createRecipe(t, token, true)

	favoriteURL := "/api/v1/recipes/" + recipeID + "/favorite"

	t.Run("first add", func(t *testing.T) {
		status, raw := env.do(t, http.MethodPost, favoriteURL, token, nil)
		assert.Equal(t, http.StatusOK, status)

		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "favorite added", body["message"])
	})

	t.Run("repeated add succeeds as a no-op", func(t *testing.T) {
		status, raw := env.do(t, http.MethodPost, favoriteURL, token, nil)
		assert.Equal(t, http.StatusOK, status, "repeated favorite must not be an error")

		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "recipe is already a favorite", body["message"])
	})

	t.Run("favorites listing", func(t *testing.T) {
		status, raw := env.do(t, http.MethodGet, "/api/v1/recipes/favorites", token, nil)
		assert.Equal(t, http.StatusOK, status)

		var listing []map[string]any
		require.NoError(t, json.Unmarshal(raw, &listing))
		require.Len(t, listing, 1)
		assert.Equal(t, recipeID, listing[0]["id"])
	})

	t.Run("remove favorite", func(t *testing.T) {
		status, raw := env.do(t, http.MethodDelete, favoriteURL, token, nil)
		assert.Equal(t, http.StatusOK, status)

		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "favorite removed", body["message"])
	})

	t.Run("favoriting a missing recipe fails", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/api/v1/recipes/missing-id/favorite", token, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

// Идентификатор рецепта приходит из пути запроса, а буфер пути
// переиспользуется между запросами. Сохраненная связь должна пережить
// последующие запросы с другими путями.
func TestFavoriteSurvivesLaterRequests(t *testing.T) {
	env, token := newRecipeApp(t)
	recipeID := env.createRecipe(t, token, true)

	status, _ := env.do(t, http.MethodPost, "/api/v1/recipes/"+recipeID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, status)

	// Запросы с другими путями перезаписывают буфер запроса.
	env.do(t, http.MethodGet, "/api/v1/recipes/another-recipe-id-that-is-long-enough", token, nil)
	env.do(t, http.MethodGet, "/api/v1/recipes/", "", nil)

	status, raw := env.do(t, http.MethodGet, "/api/v1/recipes/favorites", token, nil)
	require.Equal(t, http.StatusOK, status)

	var listing []map[string]any
	require.NoError(t, json.Unmarshal(raw, &listing))
	require.Len(t, listing, 1)
	assert.Equal(t, recipeID, listing[0]["id"])
}
