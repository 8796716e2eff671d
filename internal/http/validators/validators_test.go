package validators

import (
	"errors"
	"testing"

	dto "taskvault.com/taskvault/internal/data_models"
	apperrors "taskvault.com/taskvault/internal/errors"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var appErr *apperrors.Exception
	if !errors.As(err, &appErr) {
		t.Fatalf("expected an Exception, got %v", err)
	}
	if appErr.StatusCode != 400 {
		t.Errorf("validation errors must map to 400, got %d", appErr.StatusCode)
	}

	fields := map[string]string{}
	for _, f := range appErr.Fields {
		fields[f.Field] = f.Message
	}
	return fields
}

func TestValidateRegister_CollectsFieldErrors(t *testing.T) {
	err := ValidateRegister(&dto.RegisterRequest{
		Name:     "Al",
		Email:    "not-an-email",
		Password: "short",
		Role:     "root",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}

	fields := fieldErrors(t, err)
	for _, want := range []string{"name", "email", "password", "role"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("expected a field error for %s", want)
		}
	}
}

func TestValidateRegister_Valid(t *testing.T) {
	err := ValidateRegister(&dto.RegisterRequest{
		Name:     "Ann",
		Email:    "a@x.com",
		Password: "longenough",
	})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateLogin(t *testing.T) {
	err := ValidateLogin(&dto.LoginRequest{Email: "a@x.com", Password: ""})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	fields := fieldErrors(t, err)
	if _, ok := fields["password"]; !ok {
		t.Error("expected a field error for password")
	}

	if err := ValidateLogin(&dto.LoginRequest{Email: "a@x.com", Password: "x"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateCreateTask(t *testing.T) {
	err := ValidateCreateTask(&dto.CreateTaskRequest{Title: "ab", Status: "done", Priority: "urgent"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	fields := fieldErrors(t, err)
	for _, want := range []string{"title", "status", "priority"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("expected a field error for %s", want)
		}
	}

	if err := ValidateCreateTask(&dto.CreateTaskRequest{Title: "Buy milk", Status: "in progress", Priority: "low"}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateUpdateTask(t *testing.T) {
	bad := "done"
	err := ValidateUpdateTask(&dto.UpdateTaskRequest{Status: &bad})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	fields := fieldErrors(t, err)
	if _, ok := fields["status"]; !ok {
		t.Error("expected a field error for status")
	}

	// An entirely empty update passes shape validation; the access
	// layer decides whether there is anything to apply.
	if err := ValidateUpdateTask(&dto.UpdateTaskRequest{}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
