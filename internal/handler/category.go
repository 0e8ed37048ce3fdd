package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ChadGichuki/Brain-Teaser/internal/domain"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo domain.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
	}
}

// Register registers the category routes
func (h *CategoryHandler) Register(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
}

// ListCategories returns the id-to-label map of every category
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepo.ListCategories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity)
	}
	if len(categories) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"categories": domain.CategoryMap(categories),
		"success":    true,
	})
}
