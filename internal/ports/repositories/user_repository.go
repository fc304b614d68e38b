// Package repositories определяет интерфейсы хранилищ домена.
package repositories

import (
	"context"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/valueobjects"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователя.
// Реализации возвращают entities.ErrUserNotFound, если пользователь не найден,
// и services.ErrEmailAlreadyExists при нарушении уникальности email.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email valueobjects.Email) (*entities.User, error)

	Update(ctx context.Context, user *entities.User) (*entities.User, error)
}
