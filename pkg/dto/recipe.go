package dto

import "github.com/dimitrije/recipebox-api/internal/models"

// RecipeRequest is the body of both create and update. Name and Directions
// are pointers so an update can leave them untouched.
type RecipeRequest struct {
	Name        *string                 `json:"name,omitempty"`
	Ingredients []models.IngredientLine `json:"ingredients"`
	Directions  *string                 `json:"directions,omitempty"`
}

func (r *RecipeRequest) Validate() []FieldError {
	if len(r.Ingredients) == 0 {
		return []FieldError{bodyError("ingredients", "Ingredients is required")}
	}
	return nil
}
