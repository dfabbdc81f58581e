package dto

import "github.com/dimitrije/recipebox-api/internal/models"

type ShoppingListRequest struct {
	Name  *string                 `json:"name,omitempty"`
	Items []models.IngredientLine `json:"items"`
}

func (r *ShoppingListRequest) Validate() []FieldError {
	if len(r.Items) == 0 {
		return []FieldError{bodyError("items", "Items is required")}
	}
	return nil
}
