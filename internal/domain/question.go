package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// ListQuestions retrieves every question ordered by id ascending
	ListQuestions(ctx context.Context) ([]Question, error)

	// FindByCategory retrieves questions whose category reference equals
	// the given id, compared in its canonical string form
	FindByCategory(ctx context.Context, categoryID string) ([]Question, error)

	// SearchByText retrieves questions whose text contains the term,
	// matched case-insensitively anywhere in the string
	SearchByText(ctx context.Context, term string) ([]Question, error)

	// CreateQuestion persists a new question and returns the stored entity
	CreateQuestion(ctx context.Context, n NewQuestion) (*Question, error)

	// DeleteQuestion removes a question by id, reporting
	// ErrQuestionNotFound when no such row exists
	DeleteQuestion(ctx context.Context, id int) error
}

// Question represents a trivia question. The category reference is stored
// canonically as the decimal string form of the category id; integer ids
// are coerced at the HTTP boundary.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields of a question to be created. Every field
// is optional at the parsing stage; nil values flow through to the store
// unchanged and fail there.
type NewQuestion struct {
	Question   *string
	Answer     *string
	Category   *int
	Difficulty *int
}

// Format returns the field-name to value mapping used in JSON envelopes
func (q Question) Format() map[string]any {
	return map[string]any{
		"id":         q.ID,
		"question":   q.Question,
		"answer":     q.Answer,
		"category":   q.Category,
		"difficulty": q.Difficulty,
	}
}

// FormatQuestions formats a slice of questions for a JSON envelope
func FormatQuestions(questions []Question) []map[string]any {
	formatted := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, q.Format())
	}
	return formatted
}
