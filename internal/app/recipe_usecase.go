package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/api"
	"recipeshare/internal/ports/cache"
	"recipeshare/internal/ports/repositories"
	"recipeshare/pkg/logger"

	"go.uber.org/zap"
)

// Ошибки уровня бизнес-логики рецептов.
var (
	ErrRecipeAccessDenied = errors.New("recipe does not belong to user")
)

const (
	publicRecipesCacheKey = "recipes:public"

	msgCacheReadFailed       = "failed to read public recipes cache"
	msgCacheWriteFailed      = "failed to write public recipes cache"
	msgCacheInvalidateFailed = "failed to invalidate public recipes cache"
	msgPublicRecipesCacheHit = "public recipes served from cache"
)

// RecipeUseCase представляет собой бизнес-логику работы с рецептами.
// Кэш необязателен: при nil все чтения идут в хранилище.
type RecipeUseCase struct {
	recipeRepo repositories.RecipeRepository
	listCache  cache.Cache
}

// NewRecipeUseCase создает новый экземпляр RecipeUseCase.
func NewRecipeUseCase(recipeRepo repositories.RecipeRepository, listCache cache.Cache) api.RecipeUseCase {
	return &RecipeUseCase{
		recipeRepo: recipeRepo,
		listCache:  listCache,
	}
}

// CreateRecipe создает новый рецепт от имени пользователя.
func (uc *RecipeUseCase) CreateRecipe(ctx context.Context, authorID, title string, ingredients, instructions []string, isPublic bool) (*entities.Recipe, error) {
	recipe, err := entities.NewRecipe(authorID, title, ingredients, instructions, isPublic)
	if err != nil {
		return nil, fmt.Errorf("validating recipe: %w", err)
	}

	created, err := uc.recipeRepo.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	uc.invalidatePublicList(ctx)
	return created, nil
}

// GetRecipe возвращает рецепт по ID.
func (uc *RecipeUseCase) GetRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	recipe, err := uc.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	return recipe, nil
}

// ListPublicRecipes возвращает все публичные рецепты, по возможности из кэша.
func (uc *RecipeUseCase) ListPublicRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "ListPublicRecipes"))

	if uc.listCache != nil {
		cached, err := uc.listCache.Get(ctx, publicRecipesCacheKey)
		if err != nil {
			log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		} else if cached != "" {
			var recipes []*entities.Recipe
			if err := json.Unmarshal([]byte(cached), &recipes); err == nil {
				log.Debug(ctx, msgPublicRecipesCacheHit)
				return recipes, nil
			}
		}
	}

	recipes, err := uc.recipeRepo.ListPublic(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing public recipes: %w", err)
	}

	if uc.listCache != nil {
		if encoded, err := json.Marshal(recipes); err == nil {
			if err := uc.listCache.Set(ctx, publicRecipesCacheKey, string(encoded), 0); err != nil {
				log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
			}
		}
	}

	return recipes, nil
}

// UpdateRecipe обновляет существующий рецепт. Только автор может изменять
// свой рецепт.
func (uc *RecipeUseCase) UpdateRecipe(ctx context.Context, userID string, recipe *entities.Recipe) (*entities.Recipe, error) {
	existing, err := uc.recipeRepo.GetByID(ctx, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	if existing.AuthorID != userID {
		return nil, ErrRecipeAccessDenied
	}

	if recipe.Title != "" {
		existing.Title = recipe.Title
	}
	if len(recipe.Ingredients) > 0 {
		existing.Ingredients = recipe.Ingredients
	}
	if len(recipe.Instructions) > 0 {
		existing.Instructions = recipe.Instructions
	}
	existing.IsPublic = recipe.IsPublic

	updated, err := uc.recipeRepo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("updating recipe: %w", err)
	}

	uc.invalidatePublicList(ctx)
	return updated, nil
}

// DeleteRecipe удаляет рецепт. Только автор может удалить свой рецепт.
func (uc *RecipeUseCase) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	existing, err := uc.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}
	if existing.AuthorID != userID {
		return ErrRecipeAccessDenied
	}

	if err := uc.recipeRepo.Delete(ctx, recipeID); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}

	uc.invalidatePublicList(ctx)
	return nil
}

// AddFavorite добавляет рецепт в избранное пользователя. Повторное
// добавление - безобидный no-op, а не ошибка.
func (uc *RecipeUseCase) AddFavorite(ctx context.Context, userID, recipeID string) (api.FavoriteOutcome, error) {
	if _, err := uc.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return "", fmt.Errorf("getting recipe: %w", err)
	}

	result, err := uc.recipeRepo.AddFavorite(ctx, userID, recipeID)
	if err != nil {
		return "", fmt.Errorf("adding favorite: %w", err)
	}
	if result == repositories.FavoriteNoop {
		return api.FavoriteAlreadyPresent, nil
	}
	return api.FavoriteAdded, nil
}

// RemoveFavorite убирает рецепт из избранного пользователя.
func (uc *RecipeUseCase) RemoveFavorite(ctx context.Context, userID, recipeID string) (api.FavoriteOutcome, error) {
	if _, err := uc.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return "", fmt.Errorf("getting recipe: %w", err)
	}

	result, err := uc.recipeRepo.RemoveFavorite(ctx, userID, recipeID)
	if err != nil {
		return "", fmt.Errorf("removing favorite: %w", err)
	}
	if result == repositories.FavoriteNoop {
		return api.FavoriteNotPresent, nil
	}
	return api.FavoriteRemoved, nil
}

// ListFavorites возвращает избранные рецепты пользователя.
func (uc *RecipeUseCase) ListFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	recipes, err := uc.recipeRepo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return recipes, nil
}

func (uc *RecipeUseCase) invalidatePublicList(ctx context.Context) {
	if uc.listCache == nil {
		return
	}
	if err := uc.listCache.Delete(ctx, publicRecipesCacheKey); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheInvalidateFailed, zap.Error(err))
	}
}
