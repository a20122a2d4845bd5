package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
	"github.com/emre/yoklama/internal/pkg/dberrors"
)

// StudentStore is the persistence surface the student service needs.
type StudentStore interface {
	List(ctx context.Context, search, department string) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	CreateWithCourses(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	Delete(ctx context.Context, id int64) error
	ListEnrollments(ctx context.Context, search, course string) ([]*models.Enrollment, error)
}

// StudentService handles student CRUD and the enrollment listing.
type StudentService interface {
	List(ctx context.Context, q dto.StudentListQuery) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	Delete(ctx context.Context, id int64) error
	ListEnrollments(ctx context.Context, q dto.EnrollmentListQuery) ([]*models.Enrollment, error)
}

type studentService struct {
	repo StudentStore
}

// NewStudentService creates a new student service.
func NewStudentService(repo StudentStore) StudentService {
	return &studentService{repo: repo}
}

// List retrieves students matching the optional search and department filters.
func (s *studentService) List(ctx context.Context, q dto.StudentListQuery) ([]*models.Student, error) {
	return s.repo.List(ctx, q.Search, q.Department)
}

// GetByID retrieves one student.
func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Student not found")
		}
		return nil, err
	}
	return student, nil
}

// Create inserts a student together with its initial enrollments. The
// department is referenced by name and must exist.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	if req.Name == "" || req.Surname == "" || req.Email == "" || req.Department == "" {
		return 0, apperrors.NewValidationError("Missing required fields: name, surname, email, and department are required")
	}

	id, err := s.repo.CreateWithCourses(ctx, req)
	if err != nil {
		if errors.Is(err, repositories.ErrDepartmentNotFound) {
			return 0, apperrors.NewValidationError(fmt.Sprintf("Department %q not found", req.Department))
		}
		if dberrors.IsUniqueViolation(err) {
			if strings.Contains(dberrors.ConstraintName(err), "email") {
				return 0, apperrors.NewConflictError("This email address is already registered")
			}
			return 0, apperrors.NewConflictError("A student with this information already exists")
		}
		return 0, err
	}
	return id, nil
}

// Update applies a partial update. Unique violations are not translated here;
// the original update path never special-cased them.
func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	if err := s.repo.Update(ctx, id, req); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NewNotFoundError("Student not found")
		}
		return err
	}
	return nil
}

// Delete removes a student.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NewNotFoundError("Student not found")
		}
		return err
	}
	return nil
}

// ListEnrollments retrieves student-course pairs matching the filters.
func (s *studentService) ListEnrollments(ctx context.Context, q dto.EnrollmentListQuery) ([]*models.Enrollment, error) {
	return s.repo.ListEnrollments(ctx, q.Search, q.Course)
}
