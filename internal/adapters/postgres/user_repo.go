// Package postgres реализует репозитории домена поверх PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/domain/services"
	"recipeshare/internal/domain/valueobjects"
	"recipeshare/internal/ports/repositories"
	"recipeshare/pkg/logger"
)

// PgxPoolInterface описывает операции пула, используемые репозиториями.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует интерфейс repositories.UserRepository для работы с Postgres.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// userRow - промежуточное представление строки таблицы users.
type userRow struct {
	id           string
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// toEntity восстанавливает доменную сущность из строки хранилища. Хэш
// пароля оборачивается без повторной валидации.
func (r userRow) toEntity() (*entities.User, error) {
	email, err := valueobjects.NewEmail(r.email)
	if err != nil {
		return nil, fmt.Errorf("rehydrating stored email: %w", err)
	}
	return &entities.User{
		ID:        r.id,
		Name:      r.name,
		Email:     email,
		Password:  valueobjects.PasswordFromHash(r.passwordHash),
		CreatedAt: r.createdAt,
		UpdatedAt: r.updatedAt,
	}, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM users
        WHERE id = $1
    `

	var row userRow
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&row.id,
		&row.name,
		&row.email,
		&row.passwordHash,
		&row.createdAt,
		&row.updatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return row.toEntity()
}

// FindByEmail находит пользователя по email.
func (r *UserRepository) FindByEmail(ctx context.Context, email valueobjects.Email) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, name, email, password_hash, created_at, updated_at
        FROM users
        WHERE email = $1
    `

	var row userRow
	err := r.pool.QueryRow(ctx, query, email.String()).Scan(
		&row.id,
		&row.name,
		&row.email,
		&row.passwordHash,
		&row.createdAt,
		&row.updatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("email", email.String()))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by email", zap.Error(err))
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}

	return row.toEntity()
}

// Create создает нового пользователя. Идентификатор назначается здесь.
// Нарушение уникальности email возвращается как ErrEmailAlreadyExists,
// чтобы гонка с предпроверкой завершалась тем же видом отказа.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (id, name, email, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id, name, email, password_hash, created_at, updated_at
    `

	var row userRow
	err := r.pool.QueryRow(ctx, query,
		uuid.New().String(),
		user.Name,
		user.Email.String(),
		user.Password.Hash(),
	).Scan(
		&row.id,
		&row.name,
		&row.email,
		&row.passwordHash,
		&row.createdAt,
		&row.updatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			log.Debug(ctx, "duplicate email on insert", zap.String("email", user.Email.String()))
			return nil, services.ErrEmailAlreadyExists
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return row.toEntity()
}

// Update обновляет информацию о пользователе.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	query := `
        UPDATE users
        SET name = $2, email = $3, password_hash = $4, updated_at = $5
        WHERE id = $1
        RETURNING id, name, email, password_hash, created_at, updated_at
    `

	now := time.Now().UTC()

	var row userRow
	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email.String(),
		user.Password.Hash(),
		now,
	).Scan(
		&row.id,
		&row.name,
		&row.email,
		&row.passwordHash,
		&row.createdAt,
		&row.updatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.String("id", user.ID))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return row.toEntity()
}
