package validators

import (
	"strings"

	"taskvault.com/taskvault/internal/constants"
	dto "taskvault.com/taskvault/internal/data_models"
	apperrors "taskvault.com/taskvault/internal/errors"
)

func ValidateCreateTask(r *dto.CreateTaskRequest) error {
	var fields []apperrors.FieldError

	if len(strings.TrimSpace(r.Title)) < 3 {
		fields = append(fields, apperrors.FieldError{
			Field:   "title",
			Message: "title must be at least 3 characters",
		})
	}
	if r.Status != "" && !constants.ValidStatus(constants.TaskStatus(r.Status)) {
		fields = append(fields, apperrors.FieldError{
			Field:   "status",
			Message: "status must be one of: pending, in progress, completed",
		})
	}
	if r.Priority != "" && !constants.ValidPriority(constants.TaskPriority(r.Priority)) {
		fields = append(fields, apperrors.FieldError{
			Field:   "priority",
			Message: "priority must be one of: low, medium, high",
		})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

// ValidateUpdateTask checks only the fields that were provided.
func ValidateUpdateTask(r *dto.UpdateTaskRequest) error {
	var fields []apperrors.FieldError

	if r.Status != nil && *r.Status != "" && !constants.ValidStatus(constants.TaskStatus(*r.Status)) {
		fields = append(fields, apperrors.FieldError{
			Field:   "status",
			Message: "status must be one of: pending, in progress, completed",
		})
	}
	if r.Priority != nil && *r.Priority != "" && !constants.ValidPriority(constants.TaskPriority(*r.Priority)) {
		fields = append(fields, apperrors.FieldError{
			Field:   "priority",
			Message: "priority must be one of: low, medium, high",
		})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
