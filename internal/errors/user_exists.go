package errors

import "net/http"

var ErrUserExists = &Exception{
	Message:    "User already exists",
	StatusCode: http.StatusConflict,
}
