package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/adapters/memory"
	"recipeshare/internal/domain/entities"
	"recipeshare/internal/ports/repositories"
)

func newTestRecipe(t *testing.T, repo repositories.RecipeRepository, authorID string, isPublic bool) *entities.Recipe {
	t.Helper()

	recipe, err := entities.NewRecipe(authorID, "Bread", []string{"flour"}, []string{"bake"}, isPublic)
	require.NoError(t, err)

	created, err := repo.Create(context.Background(), recipe)
	require.NoError(t, err)
	return created
}

func TestRecipeRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecipeRepository()

	created := newTestRecipe(t, repo, "author-1", true)
	require.NotEmpty(t, created.ID)

	t.Run("get by id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrRecipeNotFound)
	})

	t.Run("update", func(t *testing.T) {
		created.Title = "Sourdough"
		updated, err := repo.Update(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, "Sourdough", updated.Title)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err := repo.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, entities.ErrRecipeNotFound)
	})

	t.Run("delete missing", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, "missing"), entities.ErrRecipeNotFound)
	})
}

func TestRecipeRepositoryListPublic(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecipeRepository()

	newTestRecipe(t, repo, "author-1", true)
	newTestRecipe(t, repo, "author-1", false)
	newTestRecipe(t, repo, "author-2", true)

	public, err := repo.ListPublic(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 2)
	for _, recipe := range public {
		assert.True(t, recipe.IsPublic)
	}
}

func TestRecipeRepositoryFavorites(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecipeRepository()
	recipe := newTestRecipe(t, repo, "author-1", true)

	t.Run("first add applies", func(t *testing.T) {
		result, err := repo.AddFavorite(ctx, "reader-1", recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, repositories.FavoriteApplied, result)
	})

	t.Run("second add is a no-op", func(t *testing.T) {
		result, err := repo.AddFavorite(ctx, "reader-1", recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, repositories.FavoriteNoop, result)
	})

	t.Run("is favorite", func(t *testing.T) {
		favorited, err := repo.IsFavorite(ctx, "reader-1", recipe.ID)
		require.NoError(t, err)
		assert.True(t, favorited)

		favorited, err = repo.IsFavorite(ctx, "reader-2", recipe.ID)
		require.NoError(t, err)
		assert.False(t, favorited)
	})

	t.Run("list favorites", func(t *testing.T) {
		favorites, err := repo.ListFavorites(ctx, "reader-1")
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, recipe.ID, favorites[0].ID)
	})

	t.Run("remove applies then no-ops", func(t *testing.T) {
		result, err := repo.RemoveFavorite(ctx, "reader-1", recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, repositories.FavoriteApplied, result)

		result, err = repo.RemoveFavorite(ctx, "reader-1", recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, repositories.FavoriteNoop, result)
	})

	t.Run("deleting a recipe drops its favorite links", func(t *testing.T) {
		_, err := repo.AddFavorite(ctx, "reader-1", recipe.ID)
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, recipe.ID))

		favorites, err := repo.ListFavorites(ctx, "reader-1")
		require.NoError(t, err)
		assert.Empty(t, favorites)
	})
}

func TestRecipeRepositoryConcurrentFavorites(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecipeRepository()
	recipe := newTestRecipe(t, repo, "author-1", true)

	const workers = 16
	applied := make(chan repositories.FavoriteResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := repo.AddFavorite(ctx, "reader-1", recipe.ID)
			assert.NoError(t, err)
			applied <- result
		}()
	}
	wg.Wait()
	close(applied)

	var appliedCount int
	for result := range applied {
		if result == repositories.FavoriteApplied {
			appliedCount++
		}
	}
	assert.Equal(t, 1, appliedCount, "exactly one concurrent add should apply")

	favorites, err := repo.ListFavorites(ctx, "reader-1")
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}
