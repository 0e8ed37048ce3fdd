package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ChadGichuki/Brain-Teaser/internal/domain"
	"github.com/ChadGichuki/Brain-Teaser/internal/handler"
	"github.com/ChadGichuki/Brain-Teaser/internal/service"
	"github.com/ChadGichuki/Brain-Teaser/internal/session"
)

// fakeQuestionRepo is an in-memory domain.QuestionRepository. Setting
// failWith makes every method fail, to exercise the storage-error paths.
type fakeQuestionRepo struct {
	questions []domain.Question
	nextID    int
	failWith  error
}

func newFakeQuestionRepo(questions ...domain.Question) *fakeQuestionRepo {
	nextID := 1
	for _, q := range questions {
		if q.ID >= nextID {
			nextID = q.ID + 1
		}
	}
	return &fakeQuestionRepo{questions: questions, nextID: nextID}
}

func (f *fakeQuestionRepo) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.Question(nil), f.questions...), nil
}

func (f *fakeQuestionRepo) FindByCategory(ctx context.Context, categoryID string) ([]domain.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var matches []domain.Question
	for _, q := range f.questions {
		if q.Category == categoryID {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (f *fakeQuestionRepo) SearchByText(ctx context.Context, term string) ([]domain.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var matches []domain.Question
	for _, q := range f.questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (f *fakeQuestionRepo) CreateQuestion(ctx context.Context, n domain.NewQuestion) (*domain.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	// The real schema rejects NULLs; the fake does the same.
	if n.Question == nil || n.Answer == nil || n.Category == nil || n.Difficulty == nil {
		return nil, fmt.Errorf("null value violates not-null constraint")
	}
	q := domain.Question{
		ID:         f.nextID,
		Question:   *n.Question,
		Answer:     *n.Answer,
		Category:   strconv.Itoa(*n.Category),
		Difficulty: *n.Difficulty,
	}
	f.nextID++
	f.questions = append(f.questions, q)
	return &q, nil
}

func (f *fakeQuestionRepo) DeleteQuestion(ctx context.Context, id int) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

type fakeCategoryRepo struct {
	categories []domain.Category
	failWith   error
}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.categories, nil
}

var errStorage = errors.New("storage unavailable")

func defaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
}

// seedQuestions builds n questions in the given category, ids 1..n
func seedQuestions(n int, category string) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:         i,
			Question:   fmt.Sprintf("Question number %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   category,
			Difficulty: 1 + i%5,
		})
	}
	return questions
}

// newAPI wires the handlers the way cmd/api does, with fakes behind the
// repository interfaces and miniredis behind the session manager.
func newAPI(t *testing.T, questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *echo.Echo {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	api := e.Group("/api")
	handler.NewCategoryHandler(categoryRepo).Register(api)
	handler.NewQuestionHandler(questionRepo, categoryRepo).Register(api)
	handler.NewQuizHandler(service.NewQuizService(questionRepo), session.NewManager(client)).Register(api)

	return e
}

// doJSON performs a request against the echo instance and decodes the
// JSON response body
func doJSON(t *testing.T, e *echo.Echo, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, decoded
}

// wantFailure asserts the fixed error envelope for a status code
func wantFailure(t *testing.T, code int, body map[string]any, wantCode int, wantMessage string) {
	t.Helper()
	if code != wantCode {
		t.Fatalf("status %d, want %d", code, wantCode)
	}
	if success, _ := body["success"].(bool); success {
		t.Fatal("expected success=false")
	}
	if got := body["error_code"]; got != float64(wantCode) {
		t.Fatalf("error_code %v, want %d", got, wantCode)
	}
	if got := body["message"]; got != wantMessage {
		t.Fatalf("message %q, want %q", got, wantMessage)
	}
}
