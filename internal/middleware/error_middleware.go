package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps an error onto its HTTP status and writes the standard error body.
// Not found errors become 404, validation errors 400 and anything else 500.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		message := "Not found."
		if hasCustom && custom.Message != "" {
			message = custom.Message
		}
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message),
		))

	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if hasCustom {
			if custom.Message != "" {
				detail.Message = custom.Message
			}
			if len(custom.Details) > 0 {
				detail = detail.WithDetails(custom.Details)
			}
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))

	default:
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
				WithSeverity(dto.ErrorSeverityCritical),
		))
	}
}
