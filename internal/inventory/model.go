package inventory

import "time"

// SaleEvent is one row of the append-only sales log.
type SaleEvent struct {
	FoodID   int64     `json:"food_id"`
	Quantity float64   `json:"quantity"`
	SoldAt   time.Time `json:"sold_at"`
}

// Link is one food_ingredient pivot row: how much of an ingredient
// one unit of a food consumes.
type Link struct {
	FoodID          int64   `json:"food_id"`
	IngredientID    int64   `json:"ingredient_id"`
	QuantityPerUnit float64 `json:"quantity"`
	Unit            string  `json:"unit"`
}

// Ingredient is the stock view of an ingredient.
type Ingredient struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RemainingIngredient is the projected stock after subtracting windowed
// consumption. Remaining may be negative (oversold relative to recorded
// stock) and is never clamped.
type RemainingIngredient struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Remaining float64 `json:"remaining"`
	Unit      string  `json:"unit"`
}

// Snapshot is the per-request read of everything the estimator consumes.
type Snapshot struct {
	Ingredients []Ingredient
	Links       []Link
	Sales       []SaleEvent
}
