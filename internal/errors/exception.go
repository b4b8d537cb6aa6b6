package errors

import (
	"errors"
	"net/http"
)

// Exception is an error with an HTTP status, so handlers can translate the
// taxonomy 1:1 without switching on sentinel values.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Validation builds a 400 for malformed or missing input.
func Validation(message string) *Exception {
	return &Exception{Message: message, StatusCode: http.StatusBadRequest}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
