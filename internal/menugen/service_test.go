package menugen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rasoi/internal/inventory"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeCatalog struct {
	ingredients []CatalogIngredient
	foods       []CatalogFood
	err         error
}

func (f *fakeCatalog) ListIngredients(ctx context.Context) ([]CatalogIngredient, error) {
	return f.ingredients, f.err
}

func (f *fakeCatalog) ListFoods(ctx context.Context) ([]CatalogFood, error) {
	return f.foods, f.err
}

type fakeSource struct {
	snap *inventory.Snapshot
	err  error
}

func (f *fakeSource) Snapshot(ctx context.Context, since time.Time) (*inventory.Snapshot, error) {
	return f.snap, f.err
}

// fakeLLM replays canned responses in order; the last one repeats.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
	systems   []string
}

func (f *fakeLLM) Chat(ctx context.Context, system, user string) (string, error) {
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, user)

	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	return f.responses[idx], nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{
		ingredients: []CatalogIngredient{
			{ID: 1, Name: "Flour", Price: 1.2, Amount: 10, Unit: "kg"},
			{ID: 2, Name: "Eggs", Price: 0.3, Amount: 20, Unit: "pcs"},
		},
		foods: []CatalogFood{
			{ID: 100, Name: "Pancakes", Ingredients: []string{"Flour", "Eggs"}},
		},
	}
}

func testSource() *fakeSource {
	return &fakeSource{
		snap: &inventory.Snapshot{
			Ingredients: []inventory.Ingredient{
				{ID: 1, Name: "Flour", Amount: 10, Unit: "kg"},
				{ID: 2, Name: "Eggs", Amount: 20, Unit: "pcs"},
			},
			Links: []inventory.Link{
				{FoodID: 100, IngredientID: 1, QuantityPerUnit: 0.2, Unit: "kg"},
				{FoodID: 100, IngredientID: 2, QuantityPerUnit: 2, Unit: "pcs"},
			},
			Sales: []inventory.SaleEvent{
				{FoodID: 100, Quantity: 10, SoldAt: time.Now().Add(-time.Hour)},
			},
		},
	}
}

// --------------------------------------------------
// GenerateMenu
// --------------------------------------------------

func TestGenerateMenu_Success(t *testing.T) {
	client := &fakeLLM{
		responses: []string{`{"foods":[{"name":"Shakshuka","price":11,"ingredients":[{"id":2,"name":"Eggs","quantity":"3","unit":"pcs"}]}]}`},
	}

	service := NewService(testCatalog(), testSource(), client, 0)
	result := service.GenerateMenu(context.Background(), "7-days")

	if result.Fallback {
		t.Fatal("unexpected fallback")
	}
	if result.Status != "generated" || result.TimePeriod != "7-days" {
		t.Errorf("unexpected envelope %+v", result)
	}
	if len(result.Foods) != 1 || result.Foods[0].Name != "Shakshuka" {
		t.Errorf("unexpected foods %+v", result.Foods)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 LLM call, got %d", client.calls)
	}
}

func TestGenerateMenu_PromptContainsInventory(t *testing.T) {
	client := &fakeLLM{responses: []string{`{"foods":[{"name":"x"}]}`}}

	service := NewService(testCatalog(), testSource(), client, 0)
	service.GenerateMenu(context.Background(), "7-days")

	prompt := client.prompts[0]

	// pantry and existing menu
	if !strings.Contains(prompt, "Flour (ID: 1)") {
		t.Error("prompt missing pantry ingredient")
	}
	if !strings.Contains(prompt, "Pancakes (ID: 100): Flour, Eggs") {
		t.Error("prompt missing existing food")
	}

	// remaining inventory: flour 10 - 0.2*10 = 8, eggs 20 - 2*10 = 0,
	// ranked surplus-first
	flourIdx := strings.Index(prompt, "Flour (ID: 1): 8 kg")
	eggsIdx := strings.Index(prompt, "Eggs (ID: 2): 0 pcs")
	if flourIdx == -1 || eggsIdx == -1 {
		t.Fatalf("prompt missing remaining inventory:\n%s", prompt)
	}
	if flourIdx > eggsIdx {
		t.Error("remaining list not ranked by surplus")
	}
}

func TestGenerateMenu_TopSurplusCap(t *testing.T) {
	client := &fakeLLM{responses: []string{`{"foods":[{"name":"x"}]}`}}

	service := NewService(testCatalog(), testSource(), client, 1)
	service.GenerateMenu(context.Background(), "7-days")

	prompt := client.prompts[0]
	if !strings.Contains(prompt, "Flour (ID: 1): 8 kg") {
		t.Error("top surplus ingredient missing from prompt")
	}
	if strings.Contains(prompt, "Eggs (ID: 2): 0 pcs") {
		t.Error("surplus list not capped to top 1")
	}
}

func TestGenerateMenu_EmptyFoodsRetriesThenBasicDish(t *testing.T) {
	client := &fakeLLM{
		responses: []string{`{"foods":[]}`, `{"foods":[]}`},
	}

	service := NewService(testCatalog(), testSource(), client, 0)
	result := service.GenerateMenu(context.Background(), "1-day")

	if client.calls != 2 {
		t.Fatalf("expected retry, got %d calls", client.calls)
	}
	if client.systems[1] != menuFallbackSystemPrompt {
		t.Error("retry did not use the fallback system prompt")
	}
	if result.Fallback {
		t.Error("empty-foods path is not the error fallback")
	}
	if len(result.Foods) != 1 || result.Foods[0].Name != "Basic Mixed Dish" {
		t.Errorf("expected basic dish, got %+v", result.Foods)
	}
}

func TestGenerateMenu_RetrySucceeds(t *testing.T) {
	client := &fakeLLM{
		responses: []string{
			`{"foods":[]}`,
			`{"foods":[{"name":"Veg Pulao","price":8}]}`,
		},
	}

	service := NewService(testCatalog(), testSource(), client, 0)
	result := service.GenerateMenu(context.Background(), "3-days")

	if len(result.Foods) != 1 || result.Foods[0].Name != "Veg Pulao" {
		t.Errorf("expected retry result, got %+v", result.Foods)
	}
	if result.Fallback {
		t.Error("successful retry must not be flagged as fallback")
	}
}

func TestGenerateMenu_LLMErrorGivesEmergencyDish(t *testing.T) {
	client := &fakeLLM{
		responses: []string{""},
		errs:      []error{errors.New("api down")},
	}

	service := NewService(testCatalog(), testSource(), client, 0)
	result := service.GenerateMenu(context.Background(), "7-days")

	if !result.Fallback {
		t.Fatal("expected fallback flag")
	}
	if len(result.Foods) != 1 || result.Foods[0].Name != "Emergency Basic Dish" {
		t.Errorf("expected emergency dish, got %+v", result.Foods)
	}
}

func TestGenerateMenu_NonJSONGivesEmergencyDish(t *testing.T) {
	client := &fakeLLM{responses: []string{"sorry, I cannot help with that"}}

	service := NewService(testCatalog(), testSource(), client, 0)
	result := service.GenerateMenu(context.Background(), "7-days")

	if !result.Fallback {
		t.Error("expected fallback flag for non-json output")
	}
}

func TestGenerateMenu_SnapshotErrorGivesEmergencyDish(t *testing.T) {
	client := &fakeLLM{responses: []string{`{"foods":[{"name":"x"}]}`}}
	source := &fakeSource{err: errors.New("db down")}

	service := NewService(testCatalog(), source, client, 0)
	result := service.GenerateMenu(context.Background(), "7-days")

	if !result.Fallback {
		t.Error("expected fallback flag for snapshot error")
	}
	if client.calls != 0 {
		t.Error("LLM must not be called when the snapshot fails")
	}
}

// --------------------------------------------------
// EstimateWaste
// --------------------------------------------------

func TestEstimateWaste_Success(t *testing.T) {
	client := &fakeLLM{
		responses: []string{`{"ingredients":[
			{"id":1,"name":"Flour","remaining":8,"unit":"kg","estimated_waste":2.5},
			{"name":"Eggs","remaining":0}
		]}`},
	}

	service := NewService(testCatalog(), testSource(), client, 0)
	result, err := service.EstimateWaste(context.Background(), "7-days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Status != "filtered" {
		t.Errorf("status = %q", result.Status)
	}
	if len(result.Ingredients) != 2 {
		t.Fatalf("expected 2 estimates, got %d", len(result.Ingredients))
	}

	first := result.Ingredients[0]
	if first.EstimatedWaste != 2.5 || first.Unit != "kg" {
		t.Errorf("unexpected estimate %+v", first)
	}

	// defaults filled for omitted fields
	second := result.Ingredients[1]
	if second.ID != "" || second.Unit != "kg" || second.EstimatedWaste != 0 {
		t.Errorf("defaults not applied: %+v", second)
	}
}

func TestEstimateWaste_LLMErrorPropagates(t *testing.T) {
	client := &fakeLLM{
		responses: []string{""},
		errs:      []error{errors.New("api down")},
	}

	service := NewService(testCatalog(), testSource(), client, 0)
	if _, err := service.EstimateWaste(context.Background(), "7-days"); err == nil {
		t.Error("expected error")
	}
}

func TestEstimateWaste_PromptUsesRemaining(t *testing.T) {
	client := &fakeLLM{responses: []string{`{"ingredients":[]}`}}

	service := NewService(testCatalog(), testSource(), client, 0)
	if _, err := service.EstimateWaste(context.Background(), "3-days"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := client.prompts[0]
	if !strings.Contains(prompt, "for 3-days") {
		t.Error("prompt missing time period")
	}
	if !strings.Contains(prompt, "- Flour: 8 kg") {
		t.Errorf("prompt missing remaining quantity:\n%s", prompt)
	}
}
