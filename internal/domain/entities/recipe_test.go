package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/domain/entities"
)

func TestNewRecipe(t *testing.T) {
	ingredients := []string{"flour", "water"}
	instructions := []string{"mix", "bake"}

	t.Run("valid recipe", func(t *testing.T) {
		recipe, err := entities.NewRecipe("author-1", "Bread", ingredients, instructions, true)
		require.NoError(t, err)
		assert.Equal(t, "author-1", recipe.AuthorID)
		assert.Equal(t, "Bread", recipe.Title)
		assert.True(t, recipe.IsPublic)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := entities.NewRecipe("author-1", "", ingredients, instructions, false)
		assert.ErrorIs(t, err, entities.ErrEmptyRecipeTitle)
	})

	t.Run("no ingredients", func(t *testing.T) {
		_, err := entities.NewRecipe("author-1", "Bread", nil, instructions, false)
		assert.ErrorIs(t, err, entities.ErrEmptyIngredients)
	})

	t.Run("no instructions", func(t *testing.T) {
		_, err := entities.NewRecipe("author-1", "Bread", ingredients, nil, false)
		assert.ErrorIs(t, err, entities.ErrEmptyInstructions)
	})
}
