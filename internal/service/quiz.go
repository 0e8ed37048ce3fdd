package service

import (
	"context"
	"errors"
	"math/rand"
	"strconv"

	"github.com/ChadGichuki/Brain-Teaser/internal/domain"
)

var (
	ErrNoQuestions = errors.New("no questions available")
)

// QuizService picks the next question for a quiz round
type QuizService struct {
	questionRepo domain.QuestionRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(questionRepo domain.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
	}
}

// NextQuestion draws one question uniformly at random from the candidate
// pool, excluding ids already in previous. A categoryID of 0 means all
// categories. A nil question with a nil error means the pool is exhausted
// and the quiz is over.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	var (
		pool []domain.Question
		err  error
	)
	if categoryID != 0 {
		pool, err = s.questionRepo.FindByCategory(ctx, strconv.Itoa(categoryID))
	} else {
		pool, err = s.questionRepo.ListQuestions(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	var unseen []domain.Question
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return nil, nil
	}

	question := unseen[rand.Intn(len(unseen))]
	return &question, nil
}
