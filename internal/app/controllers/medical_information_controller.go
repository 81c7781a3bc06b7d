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

// MedicalInformationController handles medical information operations
type MedicalInformationController struct {
	medicalService services.MedicalInformationService
}

// NewMedicalInformationController creates a new MedicalInformationController
func NewMedicalInformationController(medicalService services.MedicalInformationService) *MedicalInformationController {
	return &MedicalInformationController{
		medicalService: medicalService,
	}
}

// ListMedicalInformation retrieves all medical information
// @Summary List medical information
// @Tags medical-information
// @Produce json
// @Success 200 {array} dto.MedicalInformationResponse "Medical information retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /medical-information/ [get]
func (c *MedicalInformationController) ListMedicalInformation(ctx *gin.Context) {
	list, err := c.medicalService.ListMedicalInformation(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromMedicalInformationList(list))
}

// CreateMedicalInformation handles medical information creation
// @Summary Create medical information
// @Description Creates the medical information of a student that has none yet
// @Tags medical-information
// @Accept json
// @Produce json
// @Param request body dto.MedicalInformationRequest true "Medical information"
// @Success 201 {object} dto.MedicalInformationResponse "Medical information created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, unknown student or student already has medical information"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /medical-information/ [post]
func (c *MedicalInformationController) CreateMedicalInformation(ctx *gin.Context) {
	var req dto.MedicalInformationRequest
	if err := middleware.BindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	m := req.ToModel()
	if err := c.medicalService.CreateMedicalInformation(ctx.Request.Context(), m); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FromMedicalInformation(m))
}

// GetMedicalInformation retrieves medical information by ID
// @Summary Get medical information details
// @Tags medical-information
// @Produce json
// @Param id path int true "Medical information ID" Format(int64) minimum(1)
// @Success 200 {object} dto.MedicalInformationResponse "Medical information retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Medical information not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /medical-information/{id}/ [get]
func (c *MedicalInformationController) GetMedicalInformation(ctx *gin.Context) {
	id, ok := parseID(ctx, apperrors.ErrMedicalInfoNotFound)
	if !ok {
		return
	}

	m, err := c.medicalService.GetMedicalInformation(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromMedicalInformation(m))
}

// UpdateMedicalInformation replaces medical information
// @Summary Update medical information
// @Tags medical-information
// @Accept json
// @Produce json
// @Param id path int true "Medical information ID" Format(int64) minimum(1)
// @Param request body dto.MedicalInformationRequest true "Medical information"
// @Success 200 {object} dto.MedicalInformationResponse "Medical information updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, unknown student or student already has medical information"
// @Failure 404 {object} dto.ErrorResponse "Medical information not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /medical-information/{id}/ [put]
func (c *MedicalInformationController) UpdateMedicalInformation(ctx *gin.Context) {
	c.update(ctx, false)
}

// PatchMedicalInformation partially updates medical information
// @Summary Partially update medical information
// @Tags medical-information
// @Accept json
// @Produce json
// @Param id path int true "Medical information ID" Format(int64) minimum(1)
// @Param request body dto.MedicalInformationRequest false "Fields to change"
// @Success 200 {object} dto.MedicalInformationResponse "Medical information updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, unknown student or student already has medical information"
// @Failure 404 {object} dto.ErrorResponse "Medical information not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /medical-information/{id}/ [patch]
func (c *MedicalInformationController) PatchMedicalInformation(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *MedicalInformationController) update(ctx *gin.Context, partial bool) {
	id, ok := parseID(ctx, apperrors.ErrMedicalInfoNotFound)
	if !ok {
		return
	}

	body, err := middleware.ReadBody(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	m, err := c.medicalService.UpdateMedicalInformation(ctx.Request.Context(), id, func(m *models.MedicalInformation) error {
		var req dto.MedicalInformationRequest
		if partial {
			req = dto.NewMedicalInformationRequest(m)
		}
		if err := middleware.BindBody(body, &req); err != nil {
			return err
		}
		req.ApplyTo(m)
		return nil
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromMedicalInformation(m))
}

// DeleteMedicalInformation deletes medical information
// @Summary Delete medical information
// @Tags medical-information
// @Produce json
// @Param id path int true "Medical information ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Medical information deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Medical information not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /medical-information/{id}/ [delete]
func (c *MedicalInformationController) DeleteMedicalInformation(ctx *gin.Context) {
	id, ok := parseID(ctx, apperrors.ErrMedicalInfoNotFound)
	if !ok {
		return
	}

	if err := c.medicalService.DeleteMedicalInformation(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Medical information deleted successfully"})
}
