package dto

import "github.com/dimitrije/recipebox-api/internal/models"

type RecipeBookRequest struct {
	Name    *string                  `json:"name,omitempty"`
	Recipes []models.RecipeBookEntry `json:"recipes"`
}

func (r *RecipeBookRequest) Validate() []FieldError {
	if len(r.Recipes) == 0 {
		return []FieldError{bodyError("recipes", "Recipes is required")}
	}
	return nil
}
