package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Request is a DTO that can clean up its own input before validation.
type Request interface {
	Normalize()
}

// BindRequest reads the JSON body and binds it onto req with BindBody.
func BindRequest(c *gin.Context, req Request) error {
	body, err := ReadBody(c)
	if err != nil {
		return err
	}
	return BindBody(body, req)
}

// ReadBody drains the request body. Handlers that bind inside a storage
// transaction read the body first so no network read happens while it is open.
func ReadBody(c *gin.Context) ([]byte, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, apperrors.NewValidationError("", "Invalid data. The request body could not be read.")
	}
	return body, nil
}

// BindBody decodes body over the current contents of req, so fields absent
// from the body keep their values. It then normalizes and validates req.
func BindBody(body []byte, req Request) error {
	if err := binding.JSON.BindBody(body, req); err != nil && !errors.Is(err, io.EOF) {
		return decodeError(err)
	}
	req.Normalize()
	return ValidateStruct(req)
}

// ValidateStruct validates obj against its `validate` tags and returns a field
// validation error listing every failure.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = append(fields[fe.Field()], formatValidationError(fe))
	}
	return apperrors.NewFieldValidationError(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
	case "email":
		return "Enter a valid email address."
	case "datetime":
		return dto.DateFormatMessage
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", e.Param())
	default:
		return "Invalid value."
	}
}

// decodeError converts a JSON decoding failure into a validation error.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.NewValidationError(typeErr.Field, typeMismatchMessage(typeErr.Type))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperrors.NewValidationError("", "JSON parse error - "+err.Error())
	}
	if typeErr != nil {
		return apperrors.NewValidationError("", "Invalid data. Expected a dictionary, but got "+typeErr.Value+".")
	}
	return apperrors.NewValidationError("", "Invalid data. "+err.Error())
}

func typeMismatchMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "Not a valid string."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	default:
		return "A valid number is required."
	}
}
