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

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// ListStudents retrieves all students
// @Summary List students
// @Description Retrieves every student with its academic records and medical information embedded
// @Tags students
// @Produce json
// @Success 200 {array} dto.StudentResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/ [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromStudents(students))
}

// CreateStudent handles student creation
// @Summary Create a student
// @Description Creates a new student. The email must not belong to another student.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/ [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := middleware.BindRequest(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.studentService.CreateStudent(ctx.Request.Context(), student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.FromStudent(student))
}

// GetStudent retrieves a student by ID
// @Summary Get student details
// @Description Retrieves a student with its academic records and medical information embedded
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.StudentResponse "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/ [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, apperrors.ErrStudentNotFound)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromStudent(student))
}

// UpdateStudent replaces a student
// @Summary Update a student
// @Description Replaces every writable field of a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.StudentResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate email"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/ [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	c.update(ctx, false)
}

// PatchStudent partially updates a student
// @Summary Partially update a student
// @Description Changes only the fields present in the request body
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.StudentRequest false "Fields to change"
// @Success 200 {object} dto.StudentResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate email"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/ [patch]
func (c *StudentController) PatchStudent(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *StudentController) update(ctx *gin.Context, partial bool) {
	id, ok := parseID(ctx, apperrors.ErrStudentNotFound)
	if !ok {
		return
	}

	body, err := middleware.ReadBody(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, func(s *models.Student) error {
		var req dto.StudentRequest
		if partial {
			req = dto.NewStudentRequest(s)
		}
		if err := middleware.BindBody(body, &req); err != nil {
			return err
		}
		return req.ApplyTo(s)
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FromStudent(student))
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Description Deletes a student together with its academic records and medical information
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/ [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, apperrors.ErrStudentNotFound)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
