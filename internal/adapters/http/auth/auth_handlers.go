// Package auth содержит HTTP обработчики регистрации, входа и профиля пользователя.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"recipeshare/internal/adapters/http/dto"
	"recipeshare/internal/adapters/http/middleware"
	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/services"
	"recipeshare/internal/domain/valueobjects"
	"recipeshare/internal/ports/api"
	"recipeshare/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerGetProfile    = "auth handler: get profile"
	LogHandlerUpdateProfile = "auth handler: update profile"

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
	case errors.Is(err, valueobjects.ErrInvalidEmail),
		errors.Is(err, valueobjects.ErrPasswordTooShort),
		errors.Is(err, valueobjects.ErrPasswordTooWeak),
		errors.Is(err, entities.ErrEmptyUserName):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrUserNotFound):
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

// Handler содержит HTTP обработчики аутентификации и профиля.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Name == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "name, email and password are required")
	}

	user, err := h.authUseCase.Register(requestCtx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.UserFromEntity(user)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "email and password are required")
	}

	token, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		// Любая причина отказа во входе дает один и тот же ответ.
		if errors.Is(err, services.ErrInvalidCredentials) {
			return sendErrorResponse(ctx, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		}
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	response := dto.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		User:        dto.UserFromEntity(token.User),
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetProfile обрабатывает запрос на получение профиля текущего пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	profile, err := h.userUseCase.GetUserProfile(requestCtx, user.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.UserFromEntity(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateProfile обрабатывает запрос на изменение имени текущего пользователя.
func (h *Handler) UpdateProfile(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateProfile)

	user, ok := middleware.AuthenticatedUser(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthorized)
	}

	var req dto.UpdateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Name == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "name is required")
	}

	updated, err := h.userUseCase.UpdateUserName(requestCtx, user.ID, req.Name)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		statusCode := statusForError(err)
		return sendErrorResponse(ctx, statusCode, messageForError(err, statusCode))
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.UserFromEntity(updated)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
