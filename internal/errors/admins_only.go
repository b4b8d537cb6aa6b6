package errors

import "net/http"

var ErrAdminsOnly = &Exception{
	Message:    "Access denied. Admins only.",
	StatusCode: http.StatusForbidden,
}
