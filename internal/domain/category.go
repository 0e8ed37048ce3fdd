package domain

import (
	"context"
	"errors"
	"strconv"
)

// Common errors
var (
	ErrNoCategories = errors.New("no categories found")
)

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// ListCategories retrieves all categories in insertion order
	ListCategories(ctx context.Context) ([]Category, error)
}

// Category represents a labeled grouping for questions. Categories are
// seeded at schema bootstrap and read-only afterwards.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Format returns the field-name to value mapping used in JSON envelopes
func (c Category) Format() map[string]any {
	return map[string]any{
		"id":   c.ID,
		"type": c.Type,
	}
}

// CategoryMap builds the id-to-label mapping the frontend expects,
// e.g. {"1": "Science", "2": "Art"}
func CategoryMap(categories []Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.Itoa(c.ID)] = c.Type
	}
	return m
}
