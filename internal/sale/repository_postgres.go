package sale

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, sale *Sale) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO sales (food_id, quantity, sold_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, sale.FoodID, sale.Quantity, sale.SoldAt).Scan(&sale.ID, &sale.CreatedAt)
}

func (r *PostgresRepository) ListSince(
	ctx context.Context,
	since time.Time,
) ([]*Sale, error) {

	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.food_id, f.name, s.quantity, s.sold_at, s.created_at
		FROM sales s
		JOIN foods f ON f.id = s.food_id
		WHERE s.sold_at >= $1
		ORDER BY s.sold_at DESC
	`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*Sale
	for rows.Next() {
		var s Sale
		if err := rows.Scan(&s.ID, &s.FoodID, &s.FoodName, &s.Quantity, &s.SoldAt, &s.CreatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, &s)
	}

	return sales, rows.Err()
}
