package food

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

const foodColumns = `
	f.id, f.name, f.description, f.price, f.image, f.popularity,
	f.category_id, f.is_active, f.is_available, f.preparation_time,
	f.created_at, c.id, c.name
`

func scanFood(row pgx.Row) (*Food, error) {
	var f Food
	var catID *int64
	var catName *string

	err := row.Scan(
		&f.ID, &f.Name, &f.Description, &f.Price, &f.Image, &f.Popularity,
		&f.CategoryID, &f.IsActive, &f.IsAvailable, &f.PreparationTime,
		&f.CreatedAt, &catID, &catName,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil && catName != nil {
		f.Category = &CategoryRef{ID: *catID, Name: *catName}
	}
	f.Ingredients = []FoodIngredient{}

	return &f, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Food, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+foodColumns+`
		FROM foods f
		LEFT JOIN categories c ON c.id = f.category_id
		ORDER BY f.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []*Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	byID := make(map[int64]*Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	if err := r.fillIngredients(ctx, byID); err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Food, error) {
	f, err := scanFood(r.db.QueryRow(ctx, `
		SELECT `+foodColumns+`
		FROM foods f
		LEFT JOIN categories c ON c.id = f.category_id
		WHERE f.id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("food not found")
		}
		return nil, err
	}

	byID := map[int64]*Food{f.ID: f}
	if err := r.fillIngredients(ctx, byID); err != nil {
		return nil, err
	}

	return f, nil
}

func (r *PostgresRepository) Create(
	ctx context.Context,
	food *Food,
	links []LinkInput,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO foods (
			name, description, price, category_id,
			is_active, is_available, preparation_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`,
		food.Name,
		food.Description,
		food.Price,
		food.CategoryID,
		food.IsActive,
		food.IsAvailable,
		food.PreparationTime,
	).Scan(&food.ID, &food.CreatedAt)
	if err != nil {
		return err
	}

	for _, l := range links {
		_, err := tx.Exec(ctx, `
			INSERT INTO food_ingredient (food_id, ingredient_id, quantity, unit)
			VALUES ($1, $2, $3, $4)
		`, food.ID, l.IngredientID, l.Quantity, l.Unit)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) UpdateImage(ctx context.Context, id int64, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE foods SET image = $1 WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("food not found")
	}
	return nil
}

func (r *PostgresRepository) fillIngredients(
	ctx context.Context,
	byID map[int64]*Food,
) error {

	rows, err := r.db.Query(ctx, `
		SELECT fi.food_id, i.id, i.name, fi.quantity, fi.unit
		FROM food_ingredient fi
		JOIN ingredients i ON i.id = fi.ingredient_id
		ORDER BY fi.food_id, i.id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var foodID int64
		var ing FoodIngredient
		if err := rows.Scan(&foodID, &ing.ID, &ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return err
		}
		if f, ok := byID[foodID]; ok {
			f.Ingredients = append(f.Ingredients, ing)
		}
	}

	return rows.Err()
}
