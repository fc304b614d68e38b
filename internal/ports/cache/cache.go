// Package cache определяет интерфейс кэша для ответов чтения.
package cache

import (
	"context"
	"time"
)

// Cache определяет базовые операции кэширования строковых значений.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
