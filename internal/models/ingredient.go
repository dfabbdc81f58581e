package models

// IngredientLine is one line of a recipe or shopping list. It has no
// identity of its own and is stored inside its parent document.
type IngredientLine struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	ItemName string `json:"itemName"`
}
