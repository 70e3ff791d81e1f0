package menugen

// GeneratedMenu is the JSON shape the model is asked to return for
// menu planning. Decoded leniently: the model controls these values.
type GeneratedMenu struct {
	Foods []GeneratedFood `json:"foods"`
}

type GeneratedFood struct {
	Name        string                `json:"name"`
	Price       float64               `json:"price"`
	Ingredients []GeneratedIngredient `json:"ingredients"`
}

// GeneratedIngredient mirrors the prompt schema. ID is the DB id when the
// model matched a known ingredient, null otherwise; models also return it
// as a string, so it stays untyped.
type GeneratedIngredient struct {
	ID       any    `json:"id"`
	Name     string `json:"name"`
	Quantity any    `json:"quantity"`
	Unit     string `json:"unit"`
}

// WasteReport is the JSON shape of the waste-estimation response.
type WasteReport struct {
	Ingredients []WasteEstimate `json:"ingredients"`
}

type WasteEstimate struct {
	ID             any     `json:"id"`
	Name           string  `json:"name"`
	Remaining      float64 `json:"remaining"`
	Unit           string  `json:"unit"`
	EstimatedWaste float64 `json:"estimated_waste"`
}

// MenuResult is what the generate endpoint hands to its handler.
type MenuResult struct {
	TimePeriod string          `json:"timePeriod"`
	Status     string          `json:"status"`
	Foods      []GeneratedFood `json:"foods"`

	Fallback bool `json:"-"`
}

// WasteResult is what the filter endpoint hands to its handler.
type WasteResult struct {
	TimePeriod  string          `json:"timePeriod"`
	Status      string          `json:"status"`
	Ingredients []WasteEstimate `json:"ingredients"`
}

// CatalogIngredient is the prompt view of an ingredient.
type CatalogIngredient struct {
	ID     int64
	Name   string
	Price  float64
	Amount float64
	Unit   string
}

// CatalogFood is the prompt view of an existing menu item.
type CatalogFood struct {
	ID          int64
	Name        string
	Ingredients []string
}
