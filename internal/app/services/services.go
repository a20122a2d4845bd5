package services

import (
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/auth"
)

// Services holds all the service instances.
type Services struct {
	DepartmentService DepartmentService
	InstructorService InstructorService
	CourseService     CourseService
	StudentService    StudentService
	AttendanceService AttendanceService
	ReportService     ReportService
	AuthService       AuthService
}

// NewServices initializes all services over the repository container.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		InstructorService: NewInstructorService(repos.InstructorRepository, repos.DepartmentRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.InstructorRepository),
		StudentService:    NewStudentService(repos.StudentRepository),
		AttendanceService: NewAttendanceService(repos.AttendanceRepository),
		ReportService:     NewReportService(repos.ReportRepository),
		AuthService:       NewAuthService(repos.EmployeeRepository, jwtService),
	}
}
