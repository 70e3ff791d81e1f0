package category

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string, description *string) (*Category, error) {
	if name == "" {
		return nil, errors.New("missing required fields")
	}

	cat := &Category{
		Name:        name,
		Description: description,
		Foods:       []Ref{},
		Ingredients: []Ref{},
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}
