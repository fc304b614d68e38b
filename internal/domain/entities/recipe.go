package entities

import (
	"errors"
	"time"
)

// Ошибки домена рецептов.
var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrEmptyRecipeTitle  = errors.New("recipe title cannot be empty")
	ErrEmptyIngredients  = errors.New("recipe must contain at least one ingredient")
	ErrEmptyInstructions = errors.New("recipe must contain at least one instruction")
)

// Recipe представляет рецепт, опубликованный пользователем.
type Recipe struct {
	ID           string
	AuthorID     string
	Title        string
	Ingredients  []string
	Instructions []string
	IsPublic     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRecipe создает рецепт с обязательными полями.
func NewRecipe(authorID, title string, ingredients, instructions []string, isPublic bool) (*Recipe, error) {
	if title == "" {
		return nil, ErrEmptyRecipeTitle
	}
	if len(ingredients) == 0 {
		return nil, ErrEmptyIngredients
	}
	if len(instructions) == 0 {
		return nil, ErrEmptyInstructions
	}
	return &Recipe{
		AuthorID:     authorID,
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		IsPublic:     isPublic,
	}, nil
}
