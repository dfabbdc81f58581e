package models

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingList struct {
	ID        uuid.UUID        `json:"_id"`
	UserID    uuid.UUID        `json:"user"`
	Name      string           `json:"name"`
	Items     []IngredientLine `json:"items"`
	CreatedAt time.Time        `json:"date"`
}
