package errors

import "net/http"

var ErrAccessDenied = &Exception{
	Message:    "access denied",
	StatusCode: http.StatusForbidden,
}
