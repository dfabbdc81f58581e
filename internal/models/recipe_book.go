package models

import (
	"time"

	"github.com/google/uuid"
)

type RecipeBook struct {
	ID        uuid.UUID         `json:"_id"`
	UserID    uuid.UUID         `json:"user"`
	Name      string            `json:"name"`
	Recipes   []RecipeBookEntry `json:"recipes"`
	CreatedAt time.Time         `json:"date"`
}

// RecipeBookEntry is a copy of a recipe embedded in a book. RecipeID points
// back at the recipe the copy was taken from, when there is one; it is not
// checked against the recipes table.
type RecipeBookEntry struct {
	RecipeID    *uuid.UUID       `json:"recipeId,omitempty"`
	Name        string           `json:"name"`
	Ingredients []IngredientLine `json:"ingredients"`
	Directions  string           `json:"directions"`
}
