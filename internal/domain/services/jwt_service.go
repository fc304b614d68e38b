package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с JWT токенами. Снаружи конвейер аутентификации
// схлопывает их в один единообразный отказ.
var (
	ErrInvalidJWTToken    = errors.New("invalid JWT token")
	ErrExpiredJWTToken    = errors.New("JWT token has expired")
	ErrMalformedJWTToken  = errors.New("malformed JWT token")
	ErrGeneratingJWTToken = errors.New("failed to generate JWT token")
)

// JWTConfig содержит настройки для JWT сервиса. Загружается один раз при
// старте процесса и далее не изменяется.
type JWTConfig struct {
	SecretKey      []byte
	Algorithm      string
	AccessTokenTTL time.Duration
}
