package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Ijadele/task-management/internal/errors"
)

// ErrorHandler is the outermost error boundary. Taxonomy errors translate
// 1:1 to their status code; anything else becomes a 500 with a generic
// message so internals never leak to clients.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.StatusCode, echo.Map{"message": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, echo.Map{"message": http.StatusText(httpErr.Code)})
		return
	}

	log.Printf("unhandled error: %v", err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
}
