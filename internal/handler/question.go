package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ChadGichuki/Brain-Teaser/internal/domain"
	"github.com/ChadGichuki/Brain-Teaser/internal/pagination"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *QuestionHandler {
	return &QuestionHandler{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(g *echo.Group) {
	g.GET("/questions", h.ListQuestions)
	g.POST("/questions", h.CreateQuestion)
	g.DELETE("/questions/:id", h.DeleteQuestion)
	g.POST("/questions/search", h.SearchQuestions)
	g.GET("/categories/:category_id/questions", h.QuestionsByCategory)
}

// ListQuestions returns one page of questions together with the category
// map. An exhausted page is a 404 by the frontend's contract, not an
// empty success.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	all, err := h.questionRepo.ListQuestions(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	questions := pagination.Page(pageParam(c), domain.FormatQuestions(all))
	if len(questions) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	categories, err := h.categoryRepo.ListCategories(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"questions":        questions,
		"total_questions":  len(all),
		"current_category": 1,
		"categories":       domain.CategoryMap(categories),
		"success":          true,
	})
}

// CreateQuestionRequest represents the request to create a new question.
// Every field is optional here; missing fields reach the store as NULL
// and fail there.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// CreateQuestion persists a new question
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	_, err := h.questionRepo.CreateQuestion(c.Request().Context(), domain.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
	})
}

// DeleteQuestion removes a question by id. A missing target is a 422,
// not a 404; the frontend depends on that status.
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	if err := h.questionRepo.DeleteQuestion(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
	})
}

// SearchRequest represents the request to search questions by text
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions returns every question whose text contains the search
// term, case-insensitively. Zero matches is a 404.
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	matches, err := h.questionRepo.SearchByText(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if len(matches) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"questions":        domain.FormatQuestions(matches),
		"total_questions":  len(matches),
		"current_category": 1,
		"success":          true,
	})
}

// QuestionsByCategory returns one page of the questions belonging to a
// category. The integer path parameter is coerced to the category
// reference's canonical string form before comparison.
func (h *QuestionHandler) QuestionsByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	matches, err := h.questionRepo.FindByCategory(c.Request().Context(), strconv.Itoa(categoryID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if len(matches) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	questions := pagination.Page(pageParam(c), domain.FormatQuestions(matches))

	return c.JSON(http.StatusOK, echo.Map{
		"questions":        questions,
		"total_questions":  len(matches),
		"current_category": categoryID,
		"success":          true,
	})
}

// pageParam reads the page query parameter, defaulting to 1 when absent
// or non-numeric
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
