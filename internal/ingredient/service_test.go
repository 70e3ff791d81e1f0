package ingredient

import (
	"context"
	"errors"
	"testing"
	"time"

	"rasoi/internal/inventory"
)

type stubRepository struct{}

func (stubRepository) List(context.Context) ([]*Ingredient, error)     { return nil, nil }
func (stubRepository) Get(context.Context, int64) (*Ingredient, error) { return nil, nil }
func (stubRepository) Create(context.Context, *Ingredient) error       { return nil }

type fakeSource struct {
	snap  *inventory.Snapshot
	err   error
	since time.Time
}

func (f *fakeSource) Snapshot(_ context.Context, since time.Time) (*inventory.Snapshot, error) {
	f.since = since
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func depletionSnapshot() *inventory.Snapshot {
	return &inventory.Snapshot{
		Ingredients: []inventory.Ingredient{
			{ID: 1, Name: "Flour", Amount: 10, Unit: "kg"},
			{ID: 2, Name: "Eggs", Amount: 12, Unit: "pcs"},
		},
		Links: []inventory.Link{
			{FoodID: 1, IngredientID: 1, QuantityPerUnit: 0.5, Unit: "kg"},
		},
		Sales: []inventory.SaleEvent{
			{FoodID: 1, Quantity: 4, SoldAt: time.Now().Add(-time.Hour)},
		},
	}
}

func TestRemaining(t *testing.T) {
	source := &fakeSource{snap: depletionSnapshot()}
	service := NewService(stubRepository{}, source)

	got, err := service.Remaining(context.Background(), 1, "7-days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Remaining != 8 {
		t.Fatalf("expected remaining 8, got %g", got.Remaining)
	}
	if got.Name != "Flour" || got.Unit != "kg" {
		t.Fatalf("unexpected ingredient: %+v", got)
	}
}

func TestRemainingUntouchedIngredient(t *testing.T) {
	source := &fakeSource{snap: depletionSnapshot()}
	service := NewService(stubRepository{}, source)

	got, err := service.Remaining(context.Background(), 2, "7-days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Remaining != 12 {
		t.Fatalf("expected remaining 12, got %g", got.Remaining)
	}
}

func TestRemainingPeriodSetsWindow(t *testing.T) {
	source := &fakeSource{snap: depletionSnapshot()}
	service := NewService(stubRepository{}, source)

	if _, err := service.Remaining(context.Background(), 1, "1-day"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Now().AddDate(0, 0, -1)
	if diff := source.since.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expected snapshot since ~%v, got %v", want, source.since)
	}
}

func TestRemainingUnknownIngredient(t *testing.T) {
	source := &fakeSource{snap: depletionSnapshot()}
	service := NewService(stubRepository{}, source)

	if _, err := service.Remaining(context.Background(), 99, "7-days"); err == nil {
		t.Fatal("expected error for unknown ingredient")
	}
}

func TestRemainingSnapshotError(t *testing.T) {
	source := &fakeSource{err: errors.New("db down")}
	service := NewService(stubRepository{}, source)

	if _, err := service.Remaining(context.Background(), 1, "7-days"); err == nil {
		t.Fatal("expected snapshot error to propagate")
	}
}
