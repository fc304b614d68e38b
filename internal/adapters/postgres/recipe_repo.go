package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/repositories"
	"recipeshare/pkg/logger"
)

// RecipeRepository реализует интерфейс repositories.RecipeRepository.
type RecipeRepository struct {
	pool PgxPoolInterface
}

// NewRecipeRepository создает новый репозиторий рецептов.
func NewRecipeRepository(pool PgxPoolInterface) repositories.RecipeRepository {
	return &RecipeRepository{pool: pool}
}

const recipeColumns = "id, author_id, title, ingredients, instructions, is_public, created_at, updated_at"

func scanRecipe(row pgx.Row) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.AuthorID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.IsPublic,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create сохраняет новый рецепт. Идентификатор назначается здесь.
func (r *RecipeRepository) Create(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.Create"))
	log.Debug(ctx, "creating new recipe", zap.String("authorID", recipe.AuthorID))

	created, err := scanRecipe(r.pool.QueryRow(ctx,
		`INSERT INTO recipes (id, author_id, title, ingredients, instructions, is_public)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING `+recipeColumns,
		uuid.New().String(), recipe.AuthorID, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.IsPublic,
	))
	if err != nil {
		log.Error(ctx, "failed to create recipe", zap.Error(err))
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	log.Debug(ctx, "recipe created", zap.String("recipeID", created.ID))
	return created, nil
}

// GetByID получает рецепт по ID.
func (r *RecipeRepository) GetByID(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.GetByID"))

	recipe, err := scanRecipe(r.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = $1`,
		recipeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "recipe not found", zap.String("recipeID", recipeID))
			return nil, entities.ErrRecipeNotFound
		}
		log.Error(ctx, "failed to get recipe", zap.Error(err))
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// ListPublic получает все публичные рецепты, новые первыми.
func (r *RecipeRepository) ListPublic(ctx context.Context) ([]*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.ListPublic"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE is_public ORDER BY created_at DESC`,
	)
	if err != nil {
		log.Error(ctx, "failed to list public recipes", zap.Error(err))
		return nil, fmt.Errorf("failed to list public recipes: %w", err)
	}
	defer rows.Close()

	return collectRecipes(rows)
}

// Update обновляет существующий рецепт.
func (r *RecipeRepository) Update(ctx context.Context, recipe *entities.Recipe) (*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.Update"))

	updated, err := scanRecipe(r.pool.QueryRow(ctx,
		`UPDATE recipes
         SET title = $2, ingredients = $3, instructions = $4, is_public = $5, updated_at = $6
         WHERE id = $1
         RETURNING `+recipeColumns,
		recipe.ID, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.IsPublic, time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "recipe not found for update", zap.String("recipeID", recipe.ID))
			return nil, entities.ErrRecipeNotFound
		}
		log.Error(ctx, "failed to update recipe", zap.Error(err))
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return updated, nil
}

// Delete удаляет рецепт по ID.
func (r *RecipeRepository) Delete(ctx context.Context, recipeID string) error {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, recipeID)
	if err != nil {
		log.Error(ctx, "failed to delete recipe", zap.Error(err))
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "recipe not found for deletion", zap.String("recipeID", recipeID))
		return entities.ErrRecipeNotFound
	}

	return nil
}

// AddFavorite добавляет связь "избранное". Повторная вставка гасится на
// уровне БД: ON CONFLICT DO NOTHING превращает нарушение уникальности в
// безобидный no-op даже при конкурентных запросах.
func (r *RecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) (repositories.FavoriteResult, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.AddFavorite"))

	result, err := r.pool.Exec(ctx,
		`INSERT INTO user_favorite_recipes (user_id, recipe_id)
         VALUES ($1, $2)
         ON CONFLICT (user_id, recipe_id) DO NOTHING`,
		userID, recipeID,
	)
	if err != nil {
		log.Error(ctx, "failed to add favorite", zap.Error(err))
		return 0, fmt.Errorf("failed to add favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "recipe already favorited",
			zap.String("userID", userID), zap.String("recipeID", recipeID))
		return repositories.FavoriteNoop, nil
	}
	return repositories.FavoriteApplied, nil
}

// RemoveFavorite убирает связь "избранное"; отсутствие связи - no-op.
func (r *RecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) (repositories.FavoriteResult, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.RemoveFavorite"))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM user_favorite_recipes WHERE user_id = $1 AND recipe_id = $2`,
		userID, recipeID,
	)
	if err != nil {
		log.Error(ctx, "failed to remove favorite", zap.Error(err))
		return 0, fmt.Errorf("failed to remove favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		return repositories.FavoriteNoop, nil
	}
	return repositories.FavoriteApplied, nil
}

// ListFavorites получает избранные рецепты пользователя.
func (r *RecipeRepository) ListFavorites(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	log := logger.Log(ctx).With(zap.String("method", "RecipeRepository.ListFavorites"))

	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.author_id, r.title, r.ingredients, r.instructions, r.is_public, r.created_at, r.updated_at
         FROM recipes r
         JOIN user_favorite_recipes f ON f.recipe_id = r.id
         WHERE f.user_id = $1
         ORDER BY r.created_at DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list favorites", zap.Error(err))
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	return collectRecipes(rows)
}

// IsFavorite проверяет, добавлен ли рецепт в избранное пользователя.
func (r *RecipeRepository) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
            SELECT 1 FROM user_favorite_recipes WHERE user_id = $1 AND recipe_id = $2
         )`,
		userID, recipeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

func collectRecipes(rows pgx.Rows) ([]*entities.Recipe, error) {
	recipes := make([]*entities.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return recipes, nil
}
