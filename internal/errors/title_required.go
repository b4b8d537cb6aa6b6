package errors

import "net/http"

var ErrTitleRequired = &Exception{
	Message:    "Title is required",
	StatusCode: http.StatusBadRequest,
}
