package ingredient

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Ingredient, error)
	Get(ctx context.Context, id int64) (*Ingredient, error)
	Create(ctx context.Context, ingredient *Ingredient) error
}
