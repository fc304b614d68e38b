// Package services содержит реализации инфраструктурных сервисов:
// кодек bearer-токенов на основе JWT.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"recipeshare/internal/domain/services"
	svc "recipeshare/internal/ports/services"
	"recipeshare/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken   = "issuing access token"
	msgVerifyingToken = "verifying token"
	msgTokenIssued    = "token issued successfully"
	msgTokenVerified  = "token verified successfully"
	msgTokenExpired   = "token has expired"
	msgTokenMalformed = "malformed token"
	msgInvalidToken   = "invalid token"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken      = "error parsing token"
	errCtxIssuingToken   = "issuing token"
	errCtxVerifyingToken = "verifying token"
)

// ErrUnsupportedAlgorithm возвращается, если сконфигурирован не HS256.
var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// SigningAlgorithm - единственный поддерживаемый алгоритм подписи.
const SigningAlgorithm = "HS256"

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService: выпуск и проверка
// подписанных токенов с субъектом и сроком действия.
type ServiceJWT struct {
	config services.JWTConfig
}

// NewJWT создает новый экземпляр кодека JWT. Алгоритм фиксирован: любое
// другое значение конфигурации отвергается при старте.
func NewJWT(secretKey, algorithm string, accessTokenTTL time.Duration) (svc.TokenService, error) {
	if algorithm != SigningAlgorithm {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}
	return &ServiceJWT{
		config: services.JWTConfig{
			SecretKey:      []byte(secretKey),
			Algorithm:      algorithm,
			AccessTokenTTL: accessTokenTTL,
		},
	}, nil
}

// Issue выпускает JWT токен доступа с субъектом userID.
func (s *ServiceJWT) Issue(ctx context.Context, userID string) (string, time.Time, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", time.Time{}, fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, services.ErrGeneratingJWTToken)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.AccessTokenTTL)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxIssuingToken, services.ErrGeneratingJWTToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", expiresAt))
	return tokenString, expiresAt, nil
}

// Verify проверяет подпись и срок действия токена и возвращает субъект.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrExpiredJWTToken)
		case errors.Is(err, jwt.ErrTokenMalformed):
			log.Debug(ctx, msgTokenMalformed)
			return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrMalformedJWTToken)
		default:
			log.Debug(ctx, errParsingToken, zap.Error(err))
			return "", fmt.Errorf("%s: %w: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return "", fmt.Errorf("%s: %w", errCtxVerifyingToken, services.ErrInvalidJWTToken)
	}

	if claims.Subject == "" {
		log.Debug(ctx, "subject claim is empty")
		return "", fmt.Errorf("%s: %w: empty subject", errCtxVerifyingToken, services.ErrMalformedJWTToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.String("userID", claims.Subject))
	return claims.Subject, nil
}
