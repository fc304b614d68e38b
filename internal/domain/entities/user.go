// Package entities содержит основные сущности домена.
package entities

import (
	"errors"
	"time"

	"recipeshare/internal/domain/valueobjects"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmptyUserName    = errors.New("user name cannot be empty")
	ErrEmptyCredentials = errors.New("user credentials cannot be empty")
)

// User представляет основную сущность домена пользователя.
// Идентификатор назначается хранилищем при создании.
type User struct {
	ID        string
	Name      string
	Email     valueobjects.Email
	Password  valueobjects.Password
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser собирает пользователя из проверенных объектов-значений.
func NewUser(name string, email valueobjects.Email, password valueobjects.Password) (*User, error) {
	if name == "" {
		return nil, ErrEmptyUserName
	}
	if email.IsZero() || password.IsZero() {
		return nil, ErrEmptyCredentials
	}
	return &User{Name: name, Email: email, Password: password}, nil
}
