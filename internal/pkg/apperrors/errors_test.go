package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundSentinelsWrapResourceNotFound(t *testing.T) {
	for _, err := range []error{ErrStudentNotFound, ErrAcademicRecordNotFound, ErrMedicalInfoNotFound} {
		wrapped := fmt.Errorf("lookup: %w", err)
		if !errors.Is(wrapped, ErrResourceNotFound) {
			t.Fatalf("%v does not unwrap to ErrResourceNotFound", err)
		}
		if !errors.Is(wrapped, err) {
			t.Fatalf("%v lost its identity when wrapped", err)
		}
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("email", "student with this email already exists.")
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatal("expected ErrValidationFailed")
	}
	msgs, ok := err.Details["email"].([]string)
	if !ok || len(msgs) != 1 || msgs[0] != "student with this email already exists." {
		t.Fatalf("details = %#v", err.Details)
	}

	nonField := NewValidationError("", "bad body")
	if _, ok := nonField.Details[NonFieldErrorsKey]; !ok {
		t.Fatalf("details = %#v, want %s key", nonField.Details, NonFieldErrorsKey)
	}
}
