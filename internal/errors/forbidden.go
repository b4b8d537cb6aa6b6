package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "Forbidden",
	StatusCode: http.StatusForbidden,
}
