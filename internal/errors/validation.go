package errors

import "net/http"

func NewValidation(fields []FieldError) *Exception {
	return &Exception{
		Message:    "validation failed",
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}
