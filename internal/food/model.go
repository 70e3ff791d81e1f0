package food

import "time"

type Food struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Image           *string `json:"image,omitempty"`
	Popularity      int     `json:"popularity"`
	CategoryID      *int64  `json:"category_id,omitempty"`
	IsActive        bool    `json:"is_active"`
	IsAvailable     bool    `json:"is_available"`
	PreparationTime int     `json:"preparation_time"`

	Ingredients []FoodIngredient `json:"ingredients"`
	Category    *CategoryRef     `json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// FoodIngredient is an ingredient plus its pivot columns for one food.
type FoodIngredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LinkInput is one recipe line on food creation.
type LinkInput struct {
	IngredientID int64   `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}
