package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models"
	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/federation"
	"github.com/IqbalAbhipraya/eai-tubes/internal/middleware"
)

// GatewayController exposes the federated views and write orchestration. It
// owns no data; everything is delegated to the orchestrator and, through it,
// to the three stores.
type GatewayController struct {
	orchestrator *federation.Orchestrator
}

// NewGatewayController creates a new GatewayController
func NewGatewayController(orchestrator *federation.Orchestrator) *GatewayController {
	return &GatewayController{orchestrator: orchestrator}
}

func (c *GatewayController) viewer(ctx *gin.Context) (federation.Viewer, bool) {
	viewer, ok := middleware.ViewerFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
	return viewer, ok
}

// ListCourses lists the catalog with per-viewer enrollment annotations
// @Summary List courses
// @Description Lists every course in catalog order. For a student viewer each course carries whether the viewer is enrolled in it.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]federation.CourseWithEnrollment} "Courses retrieved successfully"
// @Failure 502 {object} dto.ErrorResponse "Upstream store unavailable"
// @Router /courses [get]
func (c *GatewayController) ListCourses(ctx *gin.Context) {
	viewer, ok := c.viewer(ctx)
	if !ok {
		return
	}

	view, err := c.orchestrator.ListCoursesWithEnrollmentState(ctx, viewer)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}

// CourseRoster assembles the roster of a course
// @Summary Get course roster
// @Description Joins every enrollment in a course with its student and grade. Enrollments whose student no longer exists are silently excluded.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]federation.RosterEntry} "Roster assembled successfully"
// @Failure 502 {object} dto.ErrorResponse "Upstream store unavailable"
// @Router /courses/{id}/roster [get]
func (c *GatewayController) CourseRoster(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	roster, err := c.orchestrator.CourseRoster(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roster))
}

// MyTranscript assembles the viewer's own transcript
// @Summary Get own transcript
// @Tags transcripts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=federation.Transcript} "Transcript assembled successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /me/transcript [get]
func (c *GatewayController) MyTranscript(ctx *gin.Context) {
	viewer, ok := c.viewer(ctx)
	if !ok {
		return
	}

	transcript, err := c.orchestrator.StudentTranscript(ctx, viewer.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(transcript))
}

// StudentTranscript assembles any student's transcript
// @Summary Get a student's transcript
// @Tags transcripts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=federation.Transcript} "Transcript assembled successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/transcript [get]
func (c *GatewayController) StudentTranscript(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	transcript, err := c.orchestrator.StudentTranscript(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(transcript))
}

// Enroll enrolls the viewer in a course
// @Summary Enroll in a course
// @Description Enrolls the authenticated student in a course. The student id comes from the token, never from the body.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrolled successfully"
// @Failure 403 {object} dto.ErrorResponse "Only students can enroll"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled in this course"
// @Router /enrollments [post]
func (c *GatewayController) Enroll(ctx *gin.Context) {
	viewer, ok := c.viewer(ctx)
	if !ok {
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid enrollment data", err)
		return
	}

	enrollment, err := c.orchestrator.EnrollStudent(ctx, viewer, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// SetEnrollmentStatus moves an enrollment through its lifecycle
// @Summary Update enrollment status
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateEnrollmentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Status updated successfully"
// @Router /enrollments/{id}/status [put]
func (c *GatewayController) SetEnrollmentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Enrollment")
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid status data", err)
		return
	}

	enrollment, err := c.orchestrator.SetEnrollmentStatus(ctx, id, models.EnrollmentStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(enrollment))
}

// RecordGrade records the grade for an enrollment
// @Summary Record a grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade recorded successfully"
// @Failure 409 {object} dto.ErrorResponse "Grade already exists for this enrollment"
// @Router /grades [post]
func (c *GatewayController) RecordGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid grade data", err)
		return
	}

	grade, err := c.orchestrator.RecordGrade(ctx, req.EnrollmentID, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(grade))
}

// ReviseGrade overwrites a grade value
// @Summary Revise a grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param request body dto.UpdateGradeRequest true "New grade value"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade revised successfully"
// @Router /grades/{id} [put]
func (c *GatewayController) ReviseGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Grade")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid grade data", err)
		return
	}

	grade, err := c.orchestrator.ReviseGrade(ctx, id, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// RemoveGrade deletes a grade
// @Summary Remove a grade
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade removed successfully"
// @Router /grades/{id} [delete]
func (c *GatewayController) RemoveGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Grade")
	if !ok {
		return
	}

	grade, err := c.orchestrator.RemoveGrade(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade))
}

// Register creates a student account
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student registered successfully"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /students [post]
func (c *GatewayController) Register(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid student data", err)
		return
	}

	student, err := c.orchestrator.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// UpdateMyProfile edits the viewer's own profile
// @Summary Update own profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Profile updated successfully"
// @Router /me/profile [put]
func (c *GatewayController) UpdateMyProfile(ctx *gin.Context) {
	viewer, ok := c.viewer(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid profile data", err)
		return
	}

	student, err := c.orchestrator.UpdateStudentProfile(ctx, viewer, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// RemoveStudent deletes a student
// @Summary Remove a student
// @Description Deletes a student from the student store. Enrollments are not cascaded; subsequent roster reads filter them out.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student removed successfully"
// @Router /students/{id} [delete]
func (c *GatewayController) RemoveStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Student")
	if !ok {
		return
	}

	student, err := c.orchestrator.RemoveStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// AddCourse creates a course
// @Summary Add a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course added successfully"
// @Router /courses [post]
func (c *GatewayController) AddCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.orchestrator.AddCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// ReviseCourse edits a course
// @Summary Revise a course
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course revised successfully"
// @Router /courses/{id} [put]
func (c *GatewayController) ReviseCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, "Invalid course data", err)
		return
	}

	course, err := c.orchestrator.ReviseCourse(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// RemoveCourse deletes a course
// @Summary Remove a course
// @Description Deletes a course even when active enrollments still reference it; they dangle and are filtered at read time.
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course removed successfully"
// @Router /courses/{id} [delete]
func (c *GatewayController) RemoveCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Course")
	if !ok {
		return
	}

	course, err := c.orchestrator.RemoveCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}
