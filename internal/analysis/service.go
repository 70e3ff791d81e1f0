package analysis

import (
	"context"
	"fmt"
	"time"

	"rasoi/internal/category"
	"rasoi/internal/food"
	"rasoi/internal/ingredient"
	"rasoi/internal/inventory"
)

type Report struct {
	Analysis string `json:"analysis"`
	Data     Data   `json:"data"`
}

type Data struct {
	Foods       []*food.Food                    `json:"foods"`
	Ingredients []*ingredient.Ingredient        `json:"ingredients"`
	Categories  []*category.Category            `json:"categories"`
	AtRisk      []inventory.RemainingIngredient `json:"at_risk"`
}

type Service struct {
	foods       *food.Service
	ingredients *ingredient.Service
	categories  *category.Service
	source      inventory.Source
}

func NewService(
	foods *food.Service,
	ingredients *ingredient.Service,
	categories *category.Service,
	source inventory.Source,
) *Service {
	return &Service{
		foods:       foods,
		ingredients: ingredients,
		categories:  categories,
		source:      source,
	}
}

// Analyze summarizes the whole catalog plus a week of depletion data.
func (s *Service) Analyze(ctx context.Context) (*Report, error) {
	foods, err := s.foods.List(ctx)
	if err != nil {
		return nil, err
	}

	ingredients, err := s.ingredients.List(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snap, err := s.source.Snapshot(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	remaining := inventory.ComputeRemaining(now, 7, snap.Sales, snap.Links, snap.Ingredients)
	atRisk := inventory.RankBySurplus(remaining, 5)

	oversold := 0
	for _, r := range remaining {
		if r.Remaining < 0 {
			oversold++
		}
	}

	analysis := fmt.Sprintf(
		"Analysis of %d foods, %d ingredients, and %d categories. "+
			"%d ingredients carry the largest unused stock over the past week",
		len(foods), len(ingredients), len(categories), len(atRisk),
	)
	if oversold > 0 {
		analysis += fmt.Sprintf("; %d ingredients are oversold relative to recorded stock", oversold)
	}
	analysis += "."

	return &Report{
		Analysis: analysis,
		Data: Data{
			Foods:       foods,
			Ingredients: ingredients,
			Categories:  categories,
			AtRisk:      atRisk,
		},
	}, nil
}
