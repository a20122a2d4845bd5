package repositories

import (
	"github.com/emre/yoklama/internal/db"
)

// Repositories holds all the repository instances.
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	InstructorRepository *InstructorRepository
	CourseRepository     *CourseRepository
	StudentRepository    *StudentRepository
	AttendanceRepository *AttendanceRepository
	ReportRepository     *ReportRepository
	EmployeeRepository   *EmployeeRepository
}

// NewRepositories initializes all repositories over one shared pool. Only
// the student repository needs the transaction helper, so it receives the
// database wrapper instead of the bare pool.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(database.Pool),
		InstructorRepository: NewInstructorRepository(database.Pool),
		CourseRepository:     NewCourseRepository(database.Pool),
		StudentRepository:    NewStudentRepository(database),
		AttendanceRepository: NewAttendanceRepository(database.Pool),
		ReportRepository:     NewReportRepository(database.Pool),
		EmployeeRepository:   NewEmployeeRepository(database.Pool),
	}
}
