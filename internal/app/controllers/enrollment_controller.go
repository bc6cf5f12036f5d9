package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/services"
	"github.com/IqbalAbhipraya/eai-tubes/internal/middleware"
)

// EnrollmentController handles the enrollment and grade store operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	gradeService      services.GradeService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, gradeService services.GradeService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		gradeService:      gradeService,
	}
}

// ListEnrollments lists enrollments filtered by student or course
// @Summary List enrollments
// @Description Lists enrollments for one student or one course. Exactly one of studentId and courseId must be given.
// @Tags enrollments
// @Produce json
// @Param studentId query int false "Filter by student ID"
// @Param courseId query int false "Filter by course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or conflicting filter"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	studentIDStr := ctx.Query("studentId")
	courseIDStr := ctx.Query("courseId")

	if (studentIDStr == "") == (courseIDStr == "") {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Exactly one of studentId and courseId is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var (
		enrollments []*models.Enrollment
		err         error
	)
	if studentIDStr != "" {
		var studentID int64
		studentID, err = strconv.ParseInt(studentIDStr, 10, 64)
		if err != nil {
			respondBindingError(ctx, "Invalid studentId", err)
			return
		}
		enrollments, err = c.enrollmentService.GetEnrollmentsByStudent(ctx, studentID)
	} else {
		var courseID int64
		courseID, err = strconv.ParseInt(courseIDStr, 10, 64)
		if err != nil {
			respondBindingError(ctx, "Invalid courseId", err)
			return
		}
		enrollments, err = c.enrollmentService.GetEnrollmentsByCourse(ctx, courseID)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments))
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Enrollment")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// CreateEnrollment enrolls a student in a course
// @Summary Create an enrollment
// @Description Enrolls a student in a course with status active. The pair is unique; a second attempt returns a conflict.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student is already enrolled in this course"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid enrollment data", err)
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// UpdateEnrollmentStatus moves an enrollment through its lifecycle
// @Summary Update enrollment status
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateEnrollmentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment status"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/status [put]
func (c *EnrollmentController) UpdateEnrollmentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Enrollment")
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid status data", err)
		return
	}

	enrollment, err := c.enrollmentService.UpdateStatus(ctx, id, models.EnrollmentStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// GetAllGrades retrieves all grades
// @Summary Get all grades
// @Tags grades
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved successfully"
// @Router /grades [get]
func (c *EnrollmentController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetAllGrades(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grades))
}

// GetGradeByEnrollment retrieves the grade for an enrollment
// @Summary Get grade by enrollment
// @Tags grades
// @Produce json
// @Param enrollmentId path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/by-enrollment/{enrollmentId} [get]
func (c *EnrollmentController) GetGradeByEnrollment(ctx *gin.Context) {
	enrollmentID, ok := parseIDParam(ctx, "enrollmentId", "Enrollment")
	if !ok {
		return
	}

	grade, err := c.gradeService.GetGradeByEnrollment(ctx, enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// LookupGrade retrieves a grade by its denormalized student and course ids
// @Summary Look up a grade by student and course
// @Description Resolves a grade through the student and course ids frozen at grade creation
// @Tags grades
// @Produce json
// @Param studentId query int true "Student ID"
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing ids"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/lookup [get]
func (c *EnrollmentController) LookupGrade(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
	if err != nil {
		respondBindingError(ctx, "Invalid studentId", err)
		return
	}
	courseID, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil {
		respondBindingError(ctx, "Invalid courseId", err)
		return
	}

	grade, err := c.gradeService.GetGradeByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// CreateGrade records the single grade for an enrollment
// @Summary Create a grade
// @Description Records the grade for an enrollment. The student and course ids are resolved from the enrollment and frozen onto the grade. A second create for the same enrollment returns a conflict.
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade value"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Grade already exists for this enrollment"
// @Router /grades [post]
func (c *EnrollmentController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid grade data", err)
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, req.EnrollmentID, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(grade))
}

// UpdateGrade overwrites a grade value
// @Summary Update a grade
// @Description Overwrites the grade value in place. The frozen student and course ids are never touched.
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "New grade value"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [put]
func (c *EnrollmentController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Grade")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid grade data", err)
		return
	}

	grade, err := c.gradeService.UpdateGrade(ctx, id, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// DeleteGrade removes a grade
// @Summary Delete a grade
// @Description Deletes a grade; the enrollment it belonged to is untouched
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{id} [delete]
func (c *EnrollmentController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Grade")
	if !ok {
		return
	}

	grade, err := c.gradeService.DeleteGrade(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}
