package sale

import "time"

// Sale is one append-only sales-log row. Never updated or deleted.
type Sale struct {
	ID       int64     `json:"id"`
	FoodID   int64     `json:"food_id"`
	FoodName string    `json:"food_name,omitempty"`
	Quantity float64   `json:"quantity"`
	SoldAt   time.Time `json:"sold_at"`

	CreatedAt time.Time `json:"created_at"`
}
