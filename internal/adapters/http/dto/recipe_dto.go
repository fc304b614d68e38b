package dto

import (
	"time"

	"recipeshare/internal/domain/entities"
)

// RecipeRequest содержит данные для создания или обновления рецепта.
type RecipeRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=100"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions []string `json:"instructions" validate:"required,min=1"`
	IsPublic     bool     `json:"is_public"`
}

// RecipeResponse содержит публичные данные рецепта.
type RecipeResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	Title        string    `json:"title"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FavoriteResponse - ответ на операцию с избранным.
type FavoriteResponse struct {
	Message  string `json:"message"`
	RecipeID string `json:"recipe_id"`
}

// RecipeFromEntity преобразует доменную сущность в ответ.
func RecipeFromEntity(recipe *entities.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           recipe.ID,
		AuthorID:     recipe.AuthorID,
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		IsPublic:     recipe.IsPublic,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
}

// RecipesFromEntities преобразует список сущностей в ответы.
func RecipesFromEntities(recipes []*entities.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, RecipeFromEntity(recipe))
	}
	return out
}
