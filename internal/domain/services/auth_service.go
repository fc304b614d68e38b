// Package services содержит доменные типы и ошибки аутентификации.
package services

import (
	"errors"
	"time"

	"recipeshare/internal/domain/entities"
)

// Ошибки домена аутентификации.
var (
	// ErrInvalidCredentials намеренно общая: неверный пароль и
	// несуществующий аккаунт неразличимы для вызывающего.
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrTokenGenerationFailed = errors.New("failed to generate access token")
)

// IssuedToken представляет результат успешного входа: токен и пользователь.
type IssuedToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entities.User
}

// BearerTokenType - единственный поддерживаемый тип токена.
const BearerTokenType = "bearer"
