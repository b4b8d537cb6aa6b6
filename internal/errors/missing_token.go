package errors

import "net/http"

var ErrMissingToken = &Exception{
	Message:    "Authentication required",
	StatusCode: http.StatusUnauthorized,
}
