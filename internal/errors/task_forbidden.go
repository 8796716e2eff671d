package errors

import "net/http"

var ErrTaskForbidden = &Exception{
	Message:    "not allowed to access this task",
	StatusCode: http.StatusForbidden,
}
