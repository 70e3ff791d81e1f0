package menugen

import (
	"context"
	"log"
	"time"

	"rasoi/internal/inventory"
	"rasoi/internal/llm"
)

type Service struct {
	catalog Catalog
	source  inventory.Source
	llm     llm.Client

	// topSurplus caps the waste-management list in the menu prompt;
	// 0 means unrestricted.
	topSurplus int
}

func NewService(
	catalog Catalog,
	source inventory.Source,
	client llm.Client,
	topSurplus int,
) *Service {
	return &Service{
		catalog:    catalog,
		source:     source,
		llm:        client,
		topSurplus: topSurplus,
	}
}

// --------------------------------------------------
// Generate menu suggestions
// --------------------------------------------------
// Never fails: any error on the way collapses into the emergency menu,
// the dashboard always gets at least one dish to render.
func (s *Service) GenerateMenu(
	ctx context.Context,
	timePeriod string,
) *MenuResult {

	remaining, err := s.remainingInventory(ctx, timePeriod)
	if err != nil {
		log.Println("menu generation failed:", err)
		return emergencyMenu(timePeriod)
	}

	ingredients, err := s.catalog.ListIngredients(ctx)
	if err != nil {
		log.Println("menu generation failed:", err)
		return emergencyMenu(timePeriod)
	}

	foods, err := s.catalog.ListFoods(ctx)
	if err != nil {
		log.Println("menu generation failed:", err)
		return emergencyMenu(timePeriod)
	}

	surplus := inventory.RankBySurplus(remaining, s.topSurplus)
	prompt := BuildMenuPrompt(ingredients, foods, surplus)

	menu, err := s.askForMenu(ctx, menuSystemPrompt, prompt)
	if err != nil {
		log.Println("menu generation failed:", err)
		return emergencyMenu(timePeriod)
	}

	// model returned valid JSON but no dishes: one retry, then a basic dish
	if len(menu.Foods) == 0 {
		menu, err = s.askForMenu(ctx, menuFallbackSystemPrompt, prompt)
		if err != nil {
			log.Println("menu fallback failed:", err)
			return emergencyMenu(timePeriod)
		}
		if len(menu.Foods) == 0 {
			menu.Foods = []GeneratedFood{basicDish("Basic Mixed Dish", "Mixed Ingredients")}
		}
	}

	return &MenuResult{
		TimePeriod: timePeriod,
		Status:     "generated",
		Foods:      menu.Foods,
	}
}

func (s *Service) askForMenu(
	ctx context.Context,
	system string,
	prompt string,
) (*GeneratedMenu, error) {

	out, err := s.llm.Chat(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var menu GeneratedMenu
	if err := llm.DecodeJSON(out, &menu); err != nil {
		return nil, err
	}

	return &menu, nil
}

// --------------------------------------------------
// Estimate waste per ingredient
// --------------------------------------------------
func (s *Service) EstimateWaste(
	ctx context.Context,
	timePeriod string,
) (*WasteResult, error) {

	remaining, err := s.remainingInventory(ctx, timePeriod)
	if err != nil {
		return nil, err
	}

	out, err := s.llm.Chat(ctx, wasteSystemPrompt, BuildWastePrompt(remaining, timePeriod))
	if err != nil {
		return nil, err
	}

	var report WasteReport
	if err := llm.DecodeJSON(out, &report); err != nil {
		return nil, err
	}

	// fill defaults the model tends to omit
	estimates := make([]WasteEstimate, 0, len(report.Ingredients))
	for _, e := range report.Ingredients {
		if e.ID == nil {
			e.ID = ""
		}
		if e.Unit == "" {
			e.Unit = "kg"
		}
		estimates = append(estimates, e)
	}

	return &WasteResult{
		TimePeriod:  timePeriod,
		Status:      "filtered",
		Ingredients: estimates,
	}, nil
}

// --------------------------------------------------
// Shared inventory projection
// --------------------------------------------------
func (s *Service) remainingInventory(
	ctx context.Context,
	timePeriod string,
) ([]inventory.RemainingIngredient, error) {

	days := inventory.LookbackDays(timePeriod)
	now := time.Now()

	snap, err := s.source.Snapshot(ctx, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	if mismatches := inventory.UnitMismatches(snap.Links, snap.Ingredients); len(mismatches) > 0 {
		for _, m := range mismatches {
			log.Printf(
				"[INVENTORY] unit mismatch: ingredient %d stocked in %q, consumed in %q by food %d",
				m.IngredientID, m.StockUnit, m.LinkUnit, m.FoodID,
			)
		}
	}

	return inventory.ComputeRemaining(now, days, snap.Sales, snap.Links, snap.Ingredients), nil
}

func emergencyMenu(timePeriod string) *MenuResult {
	return &MenuResult{
		TimePeriod: timePeriod,
		Status:     "generated",
		Foods:      []GeneratedFood{basicDish("Emergency Basic Dish", "Basic Ingredients")},
		Fallback:   true,
	}
}

func basicDish(name, ingredientName string) GeneratedFood {
	return GeneratedFood{
		Name:  name,
		Price: 15.00,
		Ingredients: []GeneratedIngredient{
			{
				ID:       nil,
				Name:     ingredientName,
				Quantity: "1",
				Unit:     "kg",
			},
		},
	}
}
