package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/controllers"
	"github.com/yigit/studentrecords/internal/app/models/dto"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Students           *controllers.StudentController
	AcademicRecords    *controllers.AcademicRecordController
	MedicalInformation *controllers.MedicalInformationController
	Export             *controllers.ExportController
}

// SetupRouter configures all application routes.
// Collection and item paths end with a slash; gin redirects requests without it.
func SetupRouter(router *gin.Engine, ctrl Controllers) {
	router.GET("/health", HealthCheck)

	students := router.Group("/students")
	{
		students.GET("/", ctrl.Students.ListStudents)
		students.POST("/", ctrl.Students.CreateStudent)
		students.GET("/:id/", ctrl.Students.GetStudent)
		students.PUT("/:id/", ctrl.Students.UpdateStudent)
		students.PATCH("/:id/", ctrl.Students.PatchStudent)
		students.DELETE("/:id/", ctrl.Students.DeleteStudent)
	}

	academicRecords := router.Group("/academic-records")
	{
		academicRecords.GET("/", ctrl.AcademicRecords.ListAcademicRecords)
		academicRecords.POST("/", ctrl.AcademicRecords.CreateAcademicRecord)
		academicRecords.GET("/:id/", ctrl.AcademicRecords.GetAcademicRecord)
		academicRecords.PUT("/:id/", ctrl.AcademicRecords.UpdateAcademicRecord)
		academicRecords.PATCH("/:id/", ctrl.AcademicRecords.PatchAcademicRecord)
		academicRecords.DELETE("/:id/", ctrl.AcademicRecords.DeleteAcademicRecord)
	}

	medicalInformation := router.Group("/medical-information")
	{
		medicalInformation.GET("/", ctrl.MedicalInformation.ListMedicalInformation)
		medicalInformation.POST("/", ctrl.MedicalInformation.CreateMedicalInformation)
		medicalInformation.GET("/:id/", ctrl.MedicalInformation.GetMedicalInformation)
		medicalInformation.PUT("/:id/", ctrl.MedicalInformation.UpdateMedicalInformation)
		medicalInformation.PATCH("/:id/", ctrl.MedicalInformation.PatchMedicalInformation)
		medicalInformation.DELETE("/:id/", ctrl.MedicalInformation.DeleteMedicalInformation)
	}

	exports := router.Group("/exports")
	{
		exports.GET("/students/", ctrl.Export.ExportStudents)
	}
}

// HealthCheck reports that the process is serving requests
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
