package models

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID        `json:"_id"`
	UserID      uuid.UUID        `json:"user"`
	Name        string           `json:"name"`
	Ingredients []IngredientLine `json:"ingredients"`
	Directions  string           `json:"directions"`
	CreatedAt   time.Time        `json:"date"`
}
