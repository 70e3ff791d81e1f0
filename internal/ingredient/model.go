package ingredient

import "time"

type Ingredient struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       *string `json:"image,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	IsActive    bool    `json:"is_active"`
	Longevity   int     `json:"longevity"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`

	Foods []FoodRef `json:"foods"`

	CreatedAt time.Time `json:"created_at"`
}

// FoodRef is a food using this ingredient, with the pivot columns.
type FoodRef struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}
