package menugen

import "context"

// Catalog supplies the prompt views of the current menu and pantry.
type Catalog interface {
	ListIngredients(ctx context.Context) ([]CatalogIngredient, error)
	ListFoods(ctx context.Context) ([]CatalogFood, error)
}
