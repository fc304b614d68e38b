// Package api определяет порты прикладного уровня.
package api

import (
	"context"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*entities.User, error)

	Login(ctx context.Context, email, password string) (*services.IssuedToken, error)
}
