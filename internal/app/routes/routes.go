// Package routes wires controllers onto gin routers. Each binary registers
// only its own surface; the route tables below are the single place the four
// HTTP contracts are spelled out.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/controllers"
	"github.com/IqbalAbhipraya/eai-tubes/internal/middleware"
)

// SetupStudentRoutes registers the student store surface
func SetupStudentRoutes(router *gin.Engine, studentController *controllers.StudentController) {
	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.POST("/batch", studentController.BatchStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}
}

// SetupCourseRoutes registers the course store surface
func SetupCourseRoutes(router *gin.Engine, courseController *controllers.CourseController) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.GET("/by-title", courseController.GetCourseByTitle)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}

// SetupEnrollmentRoutes registers the enrollment and grade store surface
func SetupEnrollmentRoutes(router *gin.Engine, enrollmentController *controllers.EnrollmentController) {
	v1 := router.Group("/api/v1")

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.PUT("/:id/status", enrollmentController.UpdateEnrollmentStatus)
	}

	grades := v1.Group("/grades")
	{
		grades.GET("", enrollmentController.GetAllGrades)
		grades.POST("", enrollmentController.CreateGrade)
		grades.GET("/lookup", enrollmentController.LookupGrade)
		grades.GET("/by-enrollment/:enrollmentId", enrollmentController.GetGradeByEnrollment)
		grades.PUT("/:id", enrollmentController.UpdateGrade)
		grades.DELETE("/:id", enrollmentController.DeleteGrade)
	}
}

// SetupGatewayRoutes registers the federated surface. Registration is the
// only public route; everything else requires a viewer token, and the
// teacher-only group gates the roster, grading and catalog/student
// administration intents.
func SetupGatewayRoutes(
	router *gin.Engine,
	gatewayController *controllers.GatewayController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.POST("/students", gatewayController.Register)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.ViewerAuth())
	{
		authenticated.GET("/courses", gatewayController.ListCourses)
		authenticated.GET("/me/transcript", gatewayController.MyTranscript)
		authenticated.PUT("/me/profile", gatewayController.UpdateMyProfile)
		authenticated.POST("/enrollments", gatewayController.Enroll)
		authenticated.PUT("/enrollments/:id/status", gatewayController.SetEnrollmentStatus)

		teacherOnly := authenticated.Group("")
		teacherOnly.Use(authMiddleware.RequireTeacher())
		{
			teacherOnly.GET("/courses/:id/roster", gatewayController.CourseRoster)
			teacherOnly.GET("/students/:id/transcript", gatewayController.StudentTranscript)
			teacherOnly.POST("/grades", gatewayController.RecordGrade)
			teacherOnly.PUT("/grades/:id", gatewayController.ReviseGrade)
			teacherOnly.DELETE("/grades/:id", gatewayController.RemoveGrade)
			teacherOnly.DELETE("/students/:id", gatewayController.RemoveStudent)
			teacherOnly.POST("/courses", gatewayController.AddCourse)
			teacherOnly.PUT("/courses/:id", gatewayController.ReviseCourse)
			teacherOnly.DELETE("/courses/:id", gatewayController.RemoveCourse)
		}
	}
}
