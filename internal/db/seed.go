package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedIngredient struct {
	name   string
	price  float64
	amount float64
	unit   string
}

type seedLink struct {
	ingredient string
	quantity   float64
	unit       string
}

type seedFood struct {
	name  string
	price float64
	links []seedLink
}

// Seed loads a small demo catalog plus a week of sales.
// No-op when the catalog already has data.
func Seed(db *pgxpool.Pool) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM ingredients`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: catalog not empty")
		return nil
	}

	var categoryID int64
	err := db.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ('Mains', 'Main course dishes')
		RETURNING id
	`).Scan(&categoryID)
	if err != nil {
		return err
	}

	ingredients := []seedIngredient{
		{"Flour", 1.2, 25, "kg"},
		{"Eggs", 0.3, 120, "pcs"},
		{"Tomatoes", 2.5, 18, "kg"},
		{"Paneer", 6.0, 8, "kg"},
		{"Rice", 1.8, 40, "kg"},
		{"Milk", 1.1, 20, "l"},
	}

	ingredientIDs := make(map[string]int64, len(ingredients))
	for _, ing := range ingredients {
		var id int64
		err := db.QueryRow(ctx, `
			INSERT INTO ingredients (name, price, amount, unit, category_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, ing.name, ing.price, ing.amount, ing.unit, categoryID).Scan(&id)
		if err != nil {
			return err
		}
		ingredientIDs[ing.name] = id
	}

	foods := []seedFood{
		{"Paneer Butter Masala", 12.5, []seedLink{
			{"Paneer", 0.25, "kg"},
			{"Tomatoes", 0.3, "kg"},
			{"Milk", 0.1, "l"},
		}},
		{"Egg Fried Rice", 9.0, []seedLink{
			{"Rice", 0.2, "kg"},
			{"Eggs", 2, "pcs"},
		}},
		{"Roti Basket", 4.5, []seedLink{
			{"Flour", 0.3, "kg"},
		}},
	}

	foodIDs := make(map[string]int64, len(foods))
	for _, f := range foods {
		var id int64
		err := db.QueryRow(ctx, `
			INSERT INTO foods (name, price, category_id)
			VALUES ($1, $2, $3)
			RETURNING id
		`, f.name, f.price, categoryID).Scan(&id)
		if err != nil {
			return err
		}
		foodIDs[f.name] = id

		for _, l := range f.links {
			_, err := db.Exec(ctx, `
				INSERT INTO food_ingredient (food_id, ingredient_id, quantity, unit)
				VALUES ($1, $2, $3, $4)
			`, id, ingredientIDs[l.ingredient], l.quantity, l.unit)
			if err != nil {
				return err
			}
		}
	}

	// one sale of every food per day over the last week
	now := time.Now()
	for day := 0; day < 7; day++ {
		soldAt := now.AddDate(0, 0, -day)
		for _, f := range foods {
			_, err := db.Exec(ctx, `
				INSERT INTO sales (food_id, quantity, sold_at)
				VALUES ($1, $2, $3)
			`, foodIDs[f.name], float64(1+day%3), soldAt)
			if err != nil {
				return err
			}
		}
	}

	log.Println("✅ Seeded demo catalog and sales")
	return nil
}
