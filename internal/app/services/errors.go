package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// Field messages reported to API clients.
const (
	msgEmailTaken       = "student with this email already exists."
	msgMedicalInfoTaken = "medical information with this student already exists."
)

func invalidStudentRef(studentID int64) error {
	return apperrors.NewValidationError("student", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", studentID))
}

// translateStoreError turns storage constraint errors into field validation errors.
func translateStoreError(err error, studentID int64) error {
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return apperrors.NewValidationError("email", msgEmailTaken)
	case errors.Is(err, apperrors.ErrMedicalInfoAlreadyExists):
		return apperrors.NewValidationError("student", msgMedicalInfoTaken)
	case errors.Is(err, apperrors.ErrStudentReferenceInvalid):
		return invalidStudentRef(studentID)
	}
	return err
}

// ensureStudentExists reports a validation error on the student field when the
// referenced student is absent.
func ensureStudentExists(ctx context.Context, students StudentRepository, studentID int64) error {
	if studentID <= 0 {
		return invalidStudentRef(studentID)
	}
	ok, err := students.Exists(ctx, studentID)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if !ok {
		return invalidStudentRef(studentID)
	}
	return nil
}
