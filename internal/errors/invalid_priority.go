package errors

import "net/http"

var ErrInvalidPriority = &Exception{
	Message:    "Priority must be low, medium, or high",
	StatusCode: http.StatusBadRequest,
}
