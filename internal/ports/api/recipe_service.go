package api

import (
	"context"

	"recipeshare/internal/domain/entities"
)

// FavoriteOutcome описывает исход операции над избранным для вызывающего.
type FavoriteOutcome string

// Исходы операций с избранным.
const (
	FavoriteAdded          FavoriteOutcome = "favorite added"
	FavoriteAlreadyPresent FavoriteOutcome = "recipe is already a favorite"
	FavoriteRemoved        FavoriteOutcome = "favorite removed"
	FavoriteNotPresent     FavoriteOutcome = "recipe was not a favorite"
)

// RecipeUseCase определяет основной порт для операций с рецептами.
type RecipeUseCase interface {
	CreateRecipe(ctx context.Context, authorID, title string, ingredients, instructions []string, isPublic bool) (*entities.Recipe, error)

	GetRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error)

	ListPublicRecipes(ctx context.Context) ([]*entities.Recipe, error)

	UpdateRecipe(ctx context.Context, userID string, recipe *entities.Recipe) (*entities.Recipe, error)

	DeleteRecipe(ctx context.Context, userID, recipeID string) error

	AddFavorite(ctx context.Context, userID, recipeID string) (FavoriteOutcome, error)

	RemoveFavorite(ctx context.Context, userID, recipeID string) (FavoriteOutcome, error)

	ListFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error)
}
