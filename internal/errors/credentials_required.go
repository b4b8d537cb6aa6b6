package errors

import "net/http"

var ErrCredentialsRequired = &Exception{
	Message:    "Email and password are required",
	StatusCode: http.StatusBadRequest,
}
