// Package services определяет интерфейсы инфраструктурных сервисов.
package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс кодека bearer-токенов: выпуск и
// проверка подписанных токенов с ограниченным временем жизни.
type TokenService interface {
	// Issue выпускает подписанный токен с субъектом userID.
	Issue(ctx context.Context, userID string) (string, time.Time, error)

	// Verify проверяет подпись и срок действия токена и возвращает
	// идентификатор субъекта.
	Verify(ctx context.Context, token string) (string, error)
}
