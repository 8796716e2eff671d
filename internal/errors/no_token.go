package errors

import "net/http"

var ErrNoToken = &Exception{
	Message:    "no token provided",
	StatusCode: http.StatusUnauthorized,
}
