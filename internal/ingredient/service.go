package ingredient

import (
	"context"
	"errors"
	"time"

	"rasoi/internal/inventory"
)

type Service struct {
	repo   Repository
	source inventory.Source
}

func NewService(repo Repository, source inventory.Source) *Service {
	return &Service{repo: repo, source: source}
}

func (s *Service) List(ctx context.Context) ([]*Ingredient, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Ingredient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, ing *Ingredient) (*Ingredient, error) {
	if ing.Name == "" || ing.Unit == "" {
		return nil, errors.New("missing required fields")
	}
	if ing.Amount < 0 {
		return nil, errors.New("amount must not be negative")
	}

	if err := s.repo.Create(ctx, ing); err != nil {
		return nil, err
	}

	return ing, nil
}

// --------------------------------------------------
// Projected remaining stock for one ingredient
// --------------------------------------------------
func (s *Service) Remaining(
	ctx context.Context,
	id int64,
	periodLabel string,
) (*inventory.RemainingIngredient, error) {

	days := inventory.LookbackDays(periodLabel)
	now := time.Now()

	snap, err := s.source.Snapshot(ctx, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	remaining := inventory.ComputeRemaining(
		now,
		days,
		snap.Sales,
		snap.Links,
		snap.Ingredients,
	)

	for _, r := range remaining {
		if r.ID == id {
			return &r, nil
		}
	}

	return nil, errors.New("ingredient not found")
}
