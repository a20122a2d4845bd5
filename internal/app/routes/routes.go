package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emre/yoklama/internal/app/controllers"
	"github.com/emre/yoklama/internal/middleware"
)

// SetupRouter configures all application routes. The admin UI consumes the
// endpoints at the root, without a version prefix. Everything except health,
// metrics, register and login sits behind the bearer token issued at login.
func SetupRouter(
	router *gin.Engine,
	authMiddleware *middleware.AuthMiddleware,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	instructorController *controllers.InstructorController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	reportController *controllers.ReportController,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	protected := router.Group("", authMiddleware.JWTAuth())

	protected.GET("/departments", departmentController.ListDepartments)

	instructors := protected.Group("/instructors")
	{
		instructors.GET("", instructorController.ListInstructors)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	courses := protected.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("", courseController.CreateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	students := protected.Group("/students")
	{
		// The static route must be declared before the parameterized one so
		// gin does not treat "courses" as a student id.
		students.GET("/courses", studentController.ListEnrollments)
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudent)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.GET("", attendanceController.ListAttendance)
		attendance.POST("", attendanceController.CreateAttendance)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/attendance-summary", reportController.AttendanceSummary)
		reports.GET("/attendance-rate", reportController.AttendanceRate)
	}
}
