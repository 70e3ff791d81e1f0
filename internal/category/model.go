package category

import "time"

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	Foods       []Ref `json:"foods"`
	Ingredients []Ref `json:"ingredients"`

	CreatedAt time.Time `json:"created_at"`
}

// Ref is a lightweight pointer into foods/ingredients for rollup views.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
