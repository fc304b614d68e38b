// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/repositories"
	svc "recipeshare/internal/ports/services"
	"recipeshare/pkg/logger"
)

// AuthenticatedUserKey - ключ Locals, под которым хранится аутентифицированный пользователь.
const AuthenticatedUserKey = "authenticatedUser"

const bearerPrefix = "Bearer "

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"

	msgTokenRejected   = "token verification failed"
	msgSubjectNotFound = "token subject no longer exists"
	msgUserLookup      = "failed to resolve token subject"
)

// NewAuthMiddleware создает промежуточное ПО аутентификации: извлекает
// bearer-токен, проверяет его и помещает пользователя в Locals.
// Отсутствие заголовка отличимо для клиента; все причины отклонения
// предъявленного токена дают одинаковый ответ.
func NewAuthMiddleware(tokenService svc.TokenService, userRepo repositories.UserRepository) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if token == "" {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		userID, err := tokenService.Verify(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, msgTokenRejected, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		user, err := userRepo.FindByID(requestCtx, userID)
		if err != nil {
			// Пользователь мог быть удален после выпуска токена; для клиента
			// ответ не отличается от невалидного токена.
			if errors.Is(err, entities.ErrUserNotFound) {
				log.Debug(requestCtx, msgSubjectNotFound, zap.String("user_id", userID))
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": ErrorInvalidToken,
				})
			}
			log.Error(requestCtx, msgUserLookup, zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}

		ctx.Locals(AuthenticatedUserKey, user)

		return ctx.Next()
	}
}

// AuthenticatedUser возвращает пользователя, помещенного в Locals промежуточным ПО аутентификации.
func AuthenticatedUser(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(AuthenticatedUserKey).(*entities.User)
	return user, ok
}
