// Package memory реализует репозитории домена в памяти. Используется в
// тестах и как легковесный вариант хранилища без внешних зависимостей.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/services"
	"recipeshare/internal/domain/valueobjects"
	"recipeshare/internal/ports/repositories"
)

// UserRepository хранит пользователей в map под RWMutex.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

// NewUserRepository создает пустой репозиторий пользователей.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{users: make(map[string]*entities.User)}
}

func cloneUser(u *entities.User) *entities.User {
	clone := *u
	return &clone
}

// Create сохраняет нового пользователя, назначая ему идентификатор.
func (r *UserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email.Equal(user.Email) {
			return nil, services.ErrEmailAlreadyExists
		}
	}

	stored := cloneUser(user)
	stored.ID = uuid.New().String()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.users[stored.ID] = stored

	return cloneUser(stored), nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return cloneUser(user), nil
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(_ context.Context, email valueobjects.Email) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email.Equal(email) {
			return cloneUser(user), nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// Update обновляет существующего пользователя.
func (r *UserRepository) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	stored := cloneUser(user)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	r.users[stored.ID] = stored

	return cloneUser(stored), nil
}
