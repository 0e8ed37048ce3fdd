package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The four messages the frontend knows how to render. Anything the
// handlers did not map themselves collapses to unprocessable.
var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
}

// HTTPErrorHandler renders every failure as the fixed JSON taxonomy:
// {success: false, error_code, message}. Routing-layer errors (404 for an
// unknown path, 405 for a known path with the wrong verb) arrive here as
// *echo.HTTPError and keep their codes; no error detail is ever surfaced.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusUnprocessableEntity
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	message, ok := errorMessages[code]
	if !ok {
		code = http.StatusUnprocessableEntity
		message = errorMessages[code]
	}

	_ = c.JSON(code, echo.Map{
		"success":    false,
		"error_code": code,
		"message":    message,
	})
}
