package validators

import (
	"regexp"
	"strings"

	"taskvault.com/taskvault/internal/constants"
	dto "taskvault.com/taskvault/internal/data_models"
	apperrors "taskvault.com/taskvault/internal/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateRegister(r *dto.RegisterRequest) error {
	var fields []apperrors.FieldError

	if len(strings.TrimSpace(r.Name)) < 3 {
		fields = append(fields, apperrors.FieldError{
			Field:   "name",
			Message: "name must be at least 3 characters",
		})
	}
	if !emailPattern.MatchString(r.Email) {
		fields = append(fields, apperrors.FieldError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if len(r.Password) < 8 {
		fields = append(fields, apperrors.FieldError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if r.Role != "" && !constants.ValidRole(constants.Role(r.Role)) {
		fields = append(fields, apperrors.FieldError{
			Field:   "role",
			Message: "role must be one of: user, admin",
		})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateLogin(r *dto.LoginRequest) error {
	var fields []apperrors.FieldError

	if !emailPattern.MatchString(r.Email) {
		fields = append(fields, apperrors.FieldError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if r.Password == "" {
		fields = append(fields, apperrors.FieldError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
