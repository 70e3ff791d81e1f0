package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt); err != nil {
			return nil, err
		}
		cat.Foods = []Ref{}
		cat.Ingredients = []Ref{}
		categories = append(categories, &cat)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	byID := make(map[int64]*Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	if err := r.fillRefs(ctx, byID); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Category, error) {
	var cat Category
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, created_at
		FROM categories
		WHERE id = $1
	`, id).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}

	cat.Foods = []Ref{}
	cat.Ingredients = []Ref{}

	byID := map[int64]*Category{cat.ID: &cat}
	if err := r.fillRefs(ctx, byID); err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *PostgresRepository) Create(ctx context.Context, category *Category) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, category.Name, category.Description).Scan(&category.ID, &category.CreatedAt)
}

// fillRefs attaches food and ingredient rollups to the given categories.
func (r *PostgresRepository) fillRefs(
	ctx context.Context,
	byID map[int64]*Category,
) error {

	rows, err := r.db.Query(ctx, `
		SELECT category_id, id, name
		FROM foods
		WHERE category_id IS NOT NULL
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var catID int64
		var ref Ref
		if err := rows.Scan(&catID, &ref.ID, &ref.Name); err != nil {
			rows.Close()
			return err
		}
		if cat, ok := byID[catID]; ok {
			cat.Foods = append(cat.Foods, ref)
		}
	}
	rows.Close()
	if rows.Err() != nil {
		return rows.Err()
	}

	rows, err = r.db.Query(ctx, `
		SELECT category_id, id, name
		FROM ingredients
		WHERE category_id IS NOT NULL
		ORDER BY id
	`)
	if err != nil {
		return err
	}
	for rows.Next() {
		var catID int64
		var ref Ref
		if err := rows.Scan(&catID, &ref.ID, &ref.Name); err != nil {
			rows.Close()
			return err
		}
		if cat, ok := byID[catID]; ok {
			cat.Ingredients = append(cat.Ingredients, ref)
		}
	}
	rows.Close()

	return rows.Err()
}
