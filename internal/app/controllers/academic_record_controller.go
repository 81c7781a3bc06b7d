package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// AcademicRecordController handles academic record operations
type AcademicRecordController struct {
	recordService services.AcademicRecordService
}

// NewAcademicRecordController creates a new AcademicRecordController
func NewAcademicRecordController(recordService services.AcademicRecordService) *AcademicRecordController {
	return &AcademicRecordController{
		recordService: recordService,
	}
}

// ListAcademicRecords retrieves all academic records
// @Summary List academic records
// @Tags academic-records
// @Produce json
// @Success 200 {array} dto.AcademicRecordResponse "Academic records retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-records/ [get]
func (c *AcademicRecordController) ListAcademicRecords(ctx *gin.Context) {
	records, err := c.recordService.ListAcademicRecords(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromAcademicRecords(records))
}

// CreateAcademicRecord handles academic record creation
// @Summary Create an academic record
// @Description Creates an academic record for an existing student
// @Tags academic-records
// @Accept json
// @Produce json
// @Param request body dto.AcademicRecordRequest true "Academic record information"
// @Success 201 {object} dto.AcademicRecordResponse "Academic record created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-records/ [post]
func (c *AcademicRecordController) CreateAcademicRecord(ctx *gin.Context) {
	var req dto.AcademicRecordRequest
	if err := middleware.BindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rec, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.recordService.CreateAcademicRecord(ctx.Request.Context(), rec); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FromAcademicRecord(rec))
}

// GetAcademicRecord retrieves an academic record by ID
// @Summary Get academic record details
// @Tags academic-records
// @Produce json
// @Param id path int true "Academic record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.AcademicRecordResponse "Academic record retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Academic record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-records/{id}/ [get]
func (c *AcademicRecordController) GetAcademicRecord(ctx *gin.Context) {
	id, ok := parseID(ctx, apperrors.ErrAcademicRecordNotFound)
	if !ok {
		return
	}

	rec, err := c.recordService.GetAcademicRecord(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromAcademicRecord(rec))
}

// UpdateAcademicRecord replaces an academic record
// @Summary Update an academic record
// @Tags academic-records
// @Accept json
// @Produce json
// @Param id path int true "Academic record ID" Format(int64) minimum(1)
// @Param request body dto.AcademicRecordRequest true "Academic record information"
// @Success 200 {object} dto.AcademicRecordResponse "Academic record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student"
// @Failure 404 {object} dto.ErrorResponse "Academic record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-records/{id}/ [put]
func (c *AcademicRecordController) UpdateAcademicRecord(ctx *gin.Context) {
	c.update(ctx, false)
}

// PatchAcademicRecord partially updates an academic record
// @Summary Partially update an academic record
// @Tags academic-records
// @Accept json
// @Produce json
// @Param id path int true "Academic record ID" Format(int64) minimum(1)
// @Param request body dto.AcademicRecordRequest false "Fields to change"
// @Success 200 {object} dto.AcademicRecordResponse "Academic record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student"
// @Failure 404 {object} dto.ErrorResponse "Academic record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-records/{id}/ [patch]
func (c *AcademicRecordController) PatchAcademicRecord(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *AcademicRecordController) update(ctx *gin.Context, partial bool) {
	id, ok := parseID(ctx, apperrors.ErrAcademicRecordNotFound)
	if !ok {
		return
	}

	body, err := middleware.ReadBody(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rec, err := c.recordService.UpdateAcademicRecord(ctx.Request.Context(), id, func(r *models.AcademicRecord) error {
		var req dto.AcademicRecordRequest
		if partial {
			req = dto.NewAcademicRecordRequest(r)
		}
		if err := middleware.BindBody(body, &req); err != nil {
			return err
		}
		return req.ApplyTo(r)
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromAcademicRecord(rec))
}

// DeleteAcademicRecord deletes an academic record
// @Summary Delete an academic record
// @Tags academic-records
// @Produce json
// @Param id path int true "Academic record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Academic record deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Academic record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-records/{id}/ [delete]
func (c *AcademicRecordController) DeleteAcademicRecord(ctx *gin.Context) {
	id, ok := parseID(ctx, apperrors.ErrAcademicRecordNotFound)
	if !ok {
		return
	}

	if err := c.recordService.DeleteAcademicRecord(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Academic record deleted successfully"})
}
