package api

import (
	"context"

	"recipeshare/internal/domain/entities"
)

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)

	UpdateUserName(ctx context.Context, userID, name string) (*entities.User, error)
}
