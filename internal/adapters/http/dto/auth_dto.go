// Package dto содержит объекты передачи данных HTTP слоя.
package dto

import (
	"time"

	"recipeshare/internal/domain/entities"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse содержит публичные данные пользователя.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse - ответ на успешный вход.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// UpdateUserRequest содержит изменяемые поля профиля.
type UpdateUserRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

// UserFromEntity преобразует доменную сущность в ответ. Хэш пароля в
// ответы не попадает.
func UserFromEntity(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		CreatedAt: user.CreatedAt,
	}
}
