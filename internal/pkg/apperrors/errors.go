package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
)

// Student Errors
var (
	ErrStudentNotFound    = NewResourceNotFoundError("student not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrStudentReferenceInvalid is returned when a child record points at a student that does not exist.
	ErrStudentReferenceInvalid = errors.New("referenced student does not exist")
)

// Academic record errors
var (
	ErrAcademicRecordNotFound = NewResourceNotFoundError("academic record not found")
)

// Medical information errors
var (
	ErrMedicalInfoNotFound      = NewResourceNotFoundError("medical information not found")
	ErrMedicalInfoAlreadyExists = errors.New("medical information for this student already exists")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a single field message.
// An empty field name stores the message under "non_field_errors".
func NewValidationError(field, message string) *CustomError {
	if field == "" {
		field = NonFieldErrorsKey
	}
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: map[string]interface{}{field: []string{message}},
	}
}

// NewFieldValidationError creates a validation error from a field -> messages map.
func NewFieldValidationError(fields map[string][]string) *CustomError {
	details := make(map[string]interface{}, len(fields))
	for field, msgs := range fields {
		details[field] = msgs
	}
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: "Validation failed",
		Details: details,
	}
}

// NonFieldErrorsKey is the details key used for errors not tied to one field.
const NonFieldErrorsKey = "non_field_errors"

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
