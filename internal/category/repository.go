package category

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, category *Category) error
}
