package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATEGORIES
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// FOODS
	// -------------------------------
	foodsSQL := `
		CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(8,2) NOT NULL DEFAULT 0,
			image VARCHAR(500),
			popularity INT NOT NULL DEFAULT 0,
			category_id INT REFERENCES categories(id),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			preparation_time INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, foodsSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENTS
	// -------------------------------
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(8,2) NOT NULL DEFAULT 0,
			image VARCHAR(500),
			category_id INT REFERENCES categories(id),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			longevity INT NOT NULL DEFAULT 0,
			amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			unit VARCHAR(20) NOT NULL DEFAULT 'kg',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// FOOD ↔ INGREDIENT PIVOT
	// -------------------------------
	pivotSQL := `
		CREATE TABLE IF NOT EXISTS food_ingredient (
			id SERIAL PRIMARY KEY,
			food_id INT NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
			ingredient_id INT NOT NULL REFERENCES ingredients(id) ON DELETE CASCADE,
			quantity NUMERIC(8,2) NOT NULL,
			unit VARCHAR(20) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (food_id, ingredient_id)
		)
	`
	if _, err := db.Exec(ctx, pivotSQL); err != nil {
		return err
	}

	// -------------------------------
	// SALES (APPEND-ONLY)
	// -------------------------------
	salesSQL := `
		CREATE TABLE IF NOT EXISTS sales (
			id SERIAL PRIMARY KEY,
			food_id INT NOT NULL REFERENCES foods(id),
			quantity NUMERIC(8,2) NOT NULL,
			sold_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales (sold_at);
	`
	if _, err := db.Exec(ctx, salesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
