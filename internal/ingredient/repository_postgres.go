package ingredient

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

const ingredientColumns = `
	id, name, description, price, image, category_id,
	is_active, longevity, amount, unit, created_at
`

func scanIngredient(row pgx.Row) (*Ingredient, error) {
	var ing Ingredient
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.Description, &ing.Price, &ing.Image,
		&ing.CategoryID, &ing.IsActive, &ing.Longevity, &ing.Amount,
		&ing.Unit, &ing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	ing.Foods = []FoodRef{}
	return &ing, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+ingredientColumns+`
		FROM ingredients
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []*Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	byID := make(map[int64]*Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	if err := r.fillFoods(ctx, byID); err != nil {
		return nil, err
	}

	return ingredients, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Ingredient, error) {
	ing, err := scanIngredient(r.db.QueryRow(ctx, `
		SELECT `+ingredientColumns+`
		FROM ingredients
		WHERE id = $1
	`, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("ingredient not found")
		}
		return nil, err
	}

	byID := map[int64]*Ingredient{ing.ID: ing}
	if err := r.fillFoods(ctx, byID); err != nil {
		return nil, err
	}

	return ing, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ingredient *Ingredient) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ingredients (
			name, description, price, category_id,
			is_active, longevity, amount, unit
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		ingredient.Name,
		ingredient.Description,
		ingredient.Price,
		ingredient.CategoryID,
		ingredient.IsActive,
		ingredient.Longevity,
		ingredient.Amount,
		ingredient.Unit,
	).Scan(&ingredient.ID, &ingredient.CreatedAt)
}

func (r *PostgresRepository) fillFoods(
	ctx context.Context,
	byID map[int64]*Ingredient,
) error {

	rows, err := r.db.Query(ctx, `
		SELECT fi.ingredient_id, f.id, f.name, fi.quantity, fi.unit
		FROM food_ingredient fi
		JOIN foods f ON f.id = fi.food_id
		ORDER BY fi.ingredient_id, f.id
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ingredientID int64
		var ref FoodRef
		if err := rows.Scan(&ingredientID, &ref.ID, &ref.Name, &ref.Quantity, &ref.Unit); err != nil {
			return err
		}
		if ing, ok := byID[ingredientID]; ok {
			ing.Foods = append(ing.Foods, ref)
		}
	}

	return rows.Err()
}
