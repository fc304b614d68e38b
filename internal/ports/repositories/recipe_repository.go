package repositories

import (
	"context"

	"recipeshare/internal/domain/entities"
)

// FavoriteResult описывает исход идемпотентной операции над избранным.
type FavoriteResult int

// Возможные исходы добавления/удаления избранного.
const (
	FavoriteApplied FavoriteResult = iota
	// FavoriteNoop означает, что связь уже была в требуемом состоянии:
	// повторное добавление или удаление отсутствующей связи не ошибка.
	FavoriteNoop
)

// RecipeRepository определяет интерфейс для операций с рецептами и
// отношением избранного.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error)

	GetByID(ctx context.Context, recipeID string) (*entities.Recipe, error)

	ListPublic(ctx context.Context) ([]*entities.Recipe, error)

	Update(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error)

	Delete(ctx context.Context, recipeID string) error

	AddFavorite(ctx context.Context, userID, recipeID string) (FavoriteResult, error)

	RemoveFavorite(ctx context.Context, userID, recipeID string) (FavoriteResult, error)

	ListFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error)

	IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
}
