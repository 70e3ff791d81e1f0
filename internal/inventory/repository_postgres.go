package inventory

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// Snapshot reads ingredients, pivot links and windowed sales in one pass.
func (s *PostgresSource) Snapshot(
	ctx context.Context,
	since time.Time,
) (*Snapshot, error) {

	snap := &Snapshot{}

	rows, err := s.db.Query(ctx, `
		SELECT id, name, amount, unit
		FROM ingredients
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Amount, &ing.Unit); err != nil {
			rows.Close()
			return nil, err
		}
		snap.Ingredients = append(snap.Ingredients, ing)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = s.db.Query(ctx, `
		SELECT food_id, ingredient_id, quantity, unit
		FROM food_ingredient
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.FoodID, &l.IngredientID, &l.QuantityPerUnit, &l.Unit); err != nil {
			rows.Close()
			return nil, err
		}
		snap.Links = append(snap.Links, l)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = s.db.Query(ctx, `
		SELECT food_id, quantity, sold_at
		FROM sales
		WHERE sold_at >= $1
	`, since)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var sale SaleEvent
		if err := rows.Scan(&sale.FoodID, &sale.Quantity, &sale.SoldAt); err != nil {
			rows.Close()
			return nil, err
		}
		snap.Sales = append(snap.Sales, sale)
	}
	rows.Close()

	return snap, rows.Err()
}
