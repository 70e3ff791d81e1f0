package food

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Food, error)
	Get(ctx context.Context, id int64) (*Food, error)
	Create(ctx context.Context, food *Food, links []LinkInput) error
	UpdateImage(ctx context.Context, id int64, url string) error
}
