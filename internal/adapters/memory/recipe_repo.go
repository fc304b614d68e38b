package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/repositories"
)

// favoriteKey идентифицирует связь пользователь-рецепт.
type favoriteKey struct {
	userID   string
	recipeID string
}

// RecipeRepository хранит рецепты и отношение избранного в памяти.
type RecipeRepository struct {
	mu        sync.RWMutex
	recipes   map[string]*entities.Recipe
	favorites map[favoriteKey]struct{}
}

// NewRecipeRepository создает пустой репозиторий рецептов.
func NewRecipeRepository() repositories.RecipeRepository {
	return &RecipeRepository{
		recipes:   make(map[string]*entities.Recipe),
		favorites: make(map[favoriteKey]struct{}),
	}
}

func cloneRecipe(r *entities.Recipe) *entities.Recipe {
	clone := *r
	clone.Ingredients = append([]string(nil), r.Ingredients...)
	clone.Instructions = append([]string(nil), r.Instructions...)
	return &clone
}

// Create сохраняет новый рецепт, назначая ему идентификатор.
func (r *RecipeRepository) Create(_ context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneRecipe(recipe)
	stored.ID = uuid.New().String()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.recipes[stored.ID] = stored

	return cloneRecipe(stored), nil
}

// GetByID получает рецепт по ID.
func (r *RecipeRepository) GetByID(_ context.Context, recipeID string) (*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[recipeID]
	if !ok {
		return nil, entities.ErrRecipeNotFound
	}
	return cloneRecipe(recipe), nil
}

// ListPublic возвращает публичные рецепты, новые первыми.
func (r *RecipeRepository) ListPublic(_ context.Context) ([]*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]*entities.Recipe, 0)
	for _, recipe := range r.recipes {
		if recipe.IsPublic {
			recipes = append(recipes, cloneRecipe(recipe))
		}
	}
	sortRecipesByCreatedAt(recipes)
	return recipes, nil
}

// Update обновляет существующий рецепт.
func (r *RecipeRepository) Update(_ context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.recipes[recipe.ID]
	if !ok {
		return nil, entities.ErrRecipeNotFound
	}

	stored := cloneRecipe(recipe)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	r.recipes[stored.ID] = stored

	return cloneRecipe(stored), nil
}

// Delete удаляет рецепт и все связи избранного с ним.
func (r *RecipeRepository) Delete(_ context.Context, recipeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[recipeID]; !ok {
		return entities.ErrRecipeNotFound
	}
	delete(r.recipes, recipeID)

	for key := range r.favorites {
		if key.recipeID == recipeID {
			delete(r.favorites, key)
		}
	}
	return nil
}

// AddFavorite добавляет связь "избранное"; повторное добавление - no-op.
func (r *RecipeRepository) AddFavorite(_ context.Context, userID, recipeID string) (repositories.FavoriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favoriteKey{userID: userID, recipeID: recipeID}
	if _, ok := r.favorites[key]; ok {
		return repositories.FavoriteNoop, nil
	}
	r.favorites[key] = struct{}{}
	return repositories.FavoriteApplied, nil
}

// RemoveFavorite убирает связь "избранное"; отсутствие связи - no-op.
func (r *RecipeRepository) RemoveFavorite(_ context.Context, userID, recipeID string) (repositories.FavoriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favoriteKey{userID: userID, recipeID: recipeID}
	if _, ok := r.favorites[key]; !ok {
		return repositories.FavoriteNoop, nil
	}
	delete(r.favorites, key)
	return repositories.FavoriteApplied, nil
}

// ListFavorites возвращает избранные рецепты пользователя.
func (r *RecipeRepository) ListFavorites(_ context.Context, userID string) ([]*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]*entities.Recipe, 0)
	for key := range r.favorites {
		if key.userID != userID {
			continue
		}
		if recipe, ok := r.recipes[key.recipeID]; ok {
			recipes = append(recipes, cloneRecipe(recipe))
		}
	}
	sortRecipesByCreatedAt(recipes)
	return recipes, nil
}

// IsFavorite проверяет наличие связи "избранное".
func (r *RecipeRepository) IsFavorite(_ context.Context, userID, recipeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.favorites[favoriteKey{userID: userID, recipeID: recipeID}]
	return ok, nil
}

func sortRecipesByCreatedAt(recipes []*entities.Recipe) {
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
	})
}
