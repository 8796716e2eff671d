package errors

import "net/http"

var ErrNoFieldsToUpdate = &Exception{
	Message:    "no fields to update",
	StatusCode: http.StatusBadRequest,
}
