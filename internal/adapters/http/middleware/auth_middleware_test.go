package middleware_test

import (
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
	"recipeshare/internal/adapters/memory"
	"recipeshare/internal/adapters/services"
	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/valueobjects"
	"recipeshare/internal/ports/repositories"
	svc "recipeshare/internal/ports/services"
)

const testSecretKey = "test-secret-key-12345"

func newPipelineApp(t *testing.T) (*fiber.App, svc.TokenService, repositories.UserRepository) {
	t.Helper()

	tokenService, err := services.NewJWT(testSecretKey, "HS256", 30*time.Minute)
	require.NoError(t, err)
	userRepo := memory.NewUserRepository()

	app := fiber.New()
	app.Use(middleware.NewRequestContextMiddleware(15 * time.Second))
	app.Get("/protected", func(ctx fiber.Ctx) error {
		user, ok := middleware.AuthenticatedUser(ctx)
		if !ok {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "no user in locals"})
		}
		return ctx.JSON(fiber.Map{"user_id": user.ID})
	}, middleware.NewAuthMiddleware(tokenService, userRepo))

	return app, tokenService, userRepo
}

func registerPipelineUser(t *testing.T, userRepo repositories.UserRepository) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail("user@example.com")
	require.NoError(t, err)
	password, err := valueobjects.NewPassword("password1")
	require.NoError(t, err)
	user, err := entities.NewUser("alice", email, password)
	require.NoError(t, err)

	created, err := userRepo.Create(t.Context(), user)
	require.NoError(t, err)
	return created
}

func doRequest(t *testing.T, app *fiber.App, authorization string) (int, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestAuthMiddleware(t *testing.T) {
	app, tokenService, userRepo := newPipelineApp(t)
	user := registerPipelineUser(t, userRepo)

	validToken, _, err := tokenService.Issue(t.Context(), user.ID)
	require.NoError(t, err)

	t.Run("valid token resolves the user", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer "+validToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, user.ID, body["user_id"])
	})

	t.Run("missing header", func(t *testing.T) {
		status, body := doRequest(t, app, "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorNoAuthHeader, body["error"])
	})

	t.Run("wrong scheme", func(t *testing.T) {
		status, body := doRequest(t, app, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorInvalidTokenFormat, body["error"])
	})

	t.Run("empty bearer token", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer ")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorInvalidTokenFormat, body["error"])
	})

	t.Run("garbage token", func(t *testing.T) {
		status, body := doRequest(t, app, "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorInvalidToken, body["error"])
	})

	t.Run("token signed with another key", func(t *testing.T) {
		otherService, err := services.NewJWT("different-secret-key-67890", "HS256", 30*time.Minute)
		require.NoError(t, err)
		forged, _, err := otherService.Issue(t.Context(), user.ID)
		require.NoError(t, err)

		status, body := doRequest(t, app, "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorInvalidToken, body["error"])
	})

	t.Run("expired token", func(t *testing.T) {
		expiredIssuer, err := services.NewJWT(testSecretKey, "HS256", -30*time.Minute)
		require.NoError(t, err)
		expired, _, err := expiredIssuer.Issue(t.Context(), user.ID)
		require.NoError(t, err)

		status, body := doRequest(t, app, "Bearer "+expired)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorInvalidToken, body["error"],
			"expired token must be indistinguishable from an invalid one")
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		ghost, _, err := tokenService.Issue(t.Context(), "deleted-user-id")
		require.NoError(t, err)

		status, body := doRequest(t, app, "Bearer "+ghost)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.ErrorInvalidToken, body["error"],
			"a deleted account must be indistinguishable from an invalid token")
	})
}
