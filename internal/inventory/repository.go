package inventory

import (
	"context"
	"time"
)

// Source supplies the per-request snapshot the estimator consumes.
// Sales are pre-filtered to sold_at >= since; the estimator filters
// again so callers may also pass an unfiltered set.
type Source interface {
	Snapshot(ctx context.Context, since time.Time) (*Snapshot, error)
}
