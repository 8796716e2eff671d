package errors

import "net/http"

var ErrUserAlreadyExists = &Exception{
	Message:    "user already exists",
	StatusCode: http.StatusBadRequest,
}
