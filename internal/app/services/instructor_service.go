package services

import (
	"context"
	"errors"
	"strings"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
	"github.com/emre/yoklama/internal/pkg/dberrors"
)

// InstructorStore is the persistence surface the instructor service needs.
type InstructorStore interface {
	List(ctx context.Context, search, department string) ([]*models.Instructor, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentChecker is the one department lookup instructor creation needs.
type DepartmentChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// InstructorService handles instructor listing, creation and deletion.
type InstructorService interface {
	List(ctx context.Context, q dto.InstructorListQuery) ([]*models.Instructor, error)
	Create(ctx context.Context, req *dto.CreateInstructorRequest) error
	Delete(ctx context.Context, id int64) error
}

type instructorService struct {
	repo        InstructorStore
	departments DepartmentChecker
}

// NewInstructorService creates a new instructor service.
func NewInstructorService(repo InstructorStore, departments DepartmentChecker) InstructorService {
	return &instructorService{repo: repo, departments: departments}
}

// List retrieves instructors matching the optional filters.
func (s *instructorService) List(ctx context.Context, q dto.InstructorListQuery) ([]*models.Instructor, error) {
	return s.repo.List(ctx, q.Search, q.Department)
}

// Create inserts an instructor with its externally assigned id after checking
// that the id is free and the department exists. The id is pre-checked for a
// friendlier message; the unique constraint still backs it up under
// concurrent creates.
func (s *instructorService) Create(ctx context.Context, req *dto.CreateInstructorRequest) error {
	if req.InstructorID == 0 || req.InstructorName == "" || req.InstructorSurname == "" ||
		req.InstructorEmail == "" || req.DepartmentID == 0 {
		return apperrors.NewValidationError("Missing required fields: instructor_id, name, surname, email, and department_id are required")
	}

	exists, err := s.repo.Exists(ctx, req.InstructorID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflictError("Instructor ID already exists")
	}

	departmentExists, err := s.departments.Exists(ctx, req.DepartmentID)
	if err != nil {
		return err
	}
	if !departmentExists {
		return apperrors.NewValidationError("Department not found")
	}

	instructor := &models.Instructor{
		ID:           req.InstructorID,
		Name:         req.InstructorName,
		Surname:      req.InstructorSurname,
		Email:        req.InstructorEmail,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Create(ctx, instructor); err != nil {
		if dberrors.IsUniqueViolation(err) {
			if strings.Contains(dberrors.ConstraintName(err), "email") {
				return apperrors.NewConflictError("This email address is already registered")
			}
			return apperrors.NewConflictError("An instructor with this information already exists")
		}
		return err
	}
	return nil
}

// Delete removes an instructor.
func (s *instructorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInstructorNotFound) {
			return apperrors.NewNotFoundError("Instructor not found")
		}
		return err
	}
	return nil
}
