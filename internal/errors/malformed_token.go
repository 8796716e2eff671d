package errors

import "net/http"

var ErrMalformedToken = &Exception{
	Message:    "invalid token format",
	StatusCode: http.StatusUnauthorized,
}
