package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "Role must be user or admin",
	StatusCode: http.StatusBadRequest,
}
