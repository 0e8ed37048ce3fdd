package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ChadGichuki/Brain-Teaser/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		pool: pool,
	}
}

// ListQuestions retrieves every question ordered by id ascending
func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// FindByCategory retrieves questions whose stored category reference
// equals the given id in its canonical string form
func (r *QuestionRepository) FindByCategory(ctx context.Context, categoryID string) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE category = $1
		ORDER BY id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find questions by category: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// SearchByText retrieves questions whose text contains the term,
// matched case-insensitively anywhere in the string
func (r *QuestionRepository) SearchByText(ctx context.Context, term string) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// CreateQuestion persists a new question and returns the stored entity.
// Nil fields are inserted as NULL and rejected by the schema's NOT NULL
// constraints, so no pre-validation happens here.
func (r *QuestionRepository) CreateQuestion(ctx context.Context, n domain.NewQuestion) (*domain.Question, error) {
	var category any
	if n.Category != nil {
		category = strconv.Itoa(*n.Category)
	}

	var question domain.Question
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, category, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id, question, answer, category, difficulty
	`, n.Question, n.Answer, category, n.Difficulty).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Category,
		&question.Difficulty,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return &question, nil
}

// DeleteQuestion removes a question by id
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func scanQuestions(rows pgx.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
