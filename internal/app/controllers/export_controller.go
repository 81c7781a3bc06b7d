package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController serves spreadsheet exports
type ExportController struct {
	exportService services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportStudents streams the student roster workbook
// @Summary Export students
// @Description Downloads an Excel workbook with Students, Academic Records and Medical Information sheets
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Student roster workbook"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exports/students/ [get]
func (c *ExportController) ExportStudents(ctx *gin.Context) {
	f, err := c.exportService.StudentRoster(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("Failed to close roster workbook")
		}
	}()

	fileName := fmt.Sprintf("students_%s.xlsx", time.Now().UTC().Format("20060102"))
	ctx.Header("Content-Type", xlsxContentType)
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	ctx.Status(http.StatusOK)
	if err := f.Write(ctx.Writer); err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Failed to write roster workbook")
	}
}
