package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "Invalid credentials",
	StatusCode: http.StatusUnauthorized,
}
