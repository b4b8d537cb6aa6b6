package errors

import "net/http"

var ErrInvalidToken = &Exception{
	Message:    "Invalid or expired token",
	StatusCode: http.StatusUnauthorized,
}
