package menugen

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCatalog struct {
	db *pgxpool.Pool
}

func NewPostgresCatalog(db *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func (c *PostgresCatalog) ListIngredients(ctx context.Context) ([]CatalogIngredient, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, name, price, amount, unit
		FROM ingredients
		WHERE is_active
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []CatalogIngredient
	for rows.Next() {
		var ing CatalogIngredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Price, &ing.Amount, &ing.Unit); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, rows.Err()
}

func (c *PostgresCatalog) ListFoods(ctx context.Context) ([]CatalogFood, error) {
	rows, err := c.db.Query(ctx, `
		SELECT id, name
		FROM foods
		WHERE is_active
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	var foods []CatalogFood
	byID := make(map[int64]int)
	for rows.Next() {
		var f CatalogFood
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			rows.Close()
			return nil, err
		}
		byID[f.ID] = len(foods)
		foods = append(foods, f)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = c.db.Query(ctx, `
		SELECT fi.food_id, i.name
		FROM food_ingredient fi
		JOIN ingredients i ON i.id = fi.ingredient_id
		ORDER BY fi.food_id, i.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var foodID int64
		var name string
		if err := rows.Scan(&foodID, &name); err != nil {
			return nil, err
		}
		if idx, ok := byID[foodID]; ok {
			foods[idx].Ingredients = append(foods[idx].Ingredients, name)
		}
	}

	return foods, rows.Err()
}
