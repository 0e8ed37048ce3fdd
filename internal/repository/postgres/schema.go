package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedCategories are inserted once, when the categories table is empty.
var seedCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// EnsureSchema creates the categories and questions tables if absent and
// seeds the default categories. The category column on questions holds the
// decimal string form of the category id; see domain.Question.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			type TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create categories table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create questions table: %w", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, label := range seedCategories {
		if _, err := pool.Exec(ctx, `INSERT INTO categories (type) VALUES ($1)`, label); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", label, err)
		}
	}

	return nil
}
