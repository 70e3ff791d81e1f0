package sale

import (
	"context"
	"errors"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends one sale event. A zero soldAt means "now".
func (s *Service) Record(
	ctx context.Context,
	foodID int64,
	quantity float64,
	soldAt time.Time,
) (*Sale, error) {

	if foodID <= 0 {
		return nil, errors.New("food_id is required")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	if soldAt.IsZero() {
		soldAt = time.Now()
	}

	sale := &Sale{
		FoodID:   foodID,
		Quantity: quantity,
		SoldAt:   soldAt,
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// Recent lists sales of the trailing window.
func (s *Service) Recent(ctx context.Context, days int) ([]*Sale, error) {
	if days <= 0 {
		days = 7
	}
	return s.repo.ListSince(ctx, time.Now().AddDate(0, 0, -days))
}
