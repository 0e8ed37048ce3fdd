package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ChadGichuki/Brain-Teaser/internal/service"
	"github.com/ChadGichuki/Brain-Teaser/internal/session"
)

// QuizHandler handles quiz-play HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
	sessions    *session.Manager
	validate    *validator.Validate
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService, sessions *session.Manager) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		sessions:    sessions,
		validate:    validator.New(),
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(g *echo.Group) {
	g.POST("/quizzes", h.PlayQuiz)
}

// QuizCategory identifies the category a quiz round draws from
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuizRequest represents the request for the next quiz question.
// QuizSession is optional; when present the server-side seen set for that
// session is merged into PreviousQuestions.
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	QuizSession       string        `json:"quiz_session"`
}

// PlayQuiz returns one random question the caller has not seen yet, or
// {question: null} once the category's pool is exhausted.
func (h *QuizHandler) PlayQuiz(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	// A zero id is indistinguishable from "no category" in the request
	// format, so it is rejected rather than read as "all categories".
	if req.QuizCategory.ID == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	ctx := c.Request().Context()

	previous := req.PreviousQuestions
	if req.QuizSession != "" {
		seen, err := h.sessions.SeenQuestions(ctx, req.QuizSession)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity)
		}
		previous = append(previous, seen...)
	}

	question, err := h.quizService.NextQuestion(ctx, req.QuizCategory.ID, previous)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}
	if question == nil {
		return c.JSON(http.StatusOK, echo.Map{
			"question": nil,
			"success":  true,
		})
	}

	if req.QuizSession != "" {
		if err := h.sessions.RecordQuestion(ctx, req.QuizSession, question.ID); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"question": question.Format(),
		"success":  true,
	})
}
