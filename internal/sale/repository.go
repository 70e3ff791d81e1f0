package sale

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	ListSince(ctx context.Context, since time.Time) ([]*Sale, error)
}
