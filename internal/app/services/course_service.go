package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
	"github.com/emre/yoklama/internal/pkg/dberrors"
)

// CourseStore is the persistence surface the course service needs.
type CourseStore interface {
	List(ctx context.Context, search string, instructorID *int64) ([]*models.Course, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

// InstructorChecker is the one instructor lookup course creation needs.
type InstructorChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CourseService handles course listing, creation and deletion.
type CourseService interface {
	List(ctx context.Context, q dto.CourseListQuery) ([]*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) error
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo        CourseStore
	instructors InstructorChecker
}

// NewCourseService creates a new course service.
func NewCourseService(repo CourseStore, instructors InstructorChecker) CourseService {
	return &courseService{repo: repo, instructors: instructors}
}

// List retrieves courses matching the optional filters. A non-numeric
// instructor_id query value is rejected.
func (s *courseService) List(ctx context.Context, q dto.CourseListQuery) ([]*models.Course, error) {
	var instructorID *int64
	if q.InstructorID != "" {
		id, err := strconv.ParseInt(q.InstructorID, 10, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid instructor_id")
		}
		instructorID = &id
	}
	return s.repo.List(ctx, q.Search, instructorID)
}

// Create inserts a course with its externally assigned id after checking that
// the id is free and the instructor exists. A missing instructor is a
// validation error here, not a 404; the course is the resource in play.
func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) error {
	if req.CourseID == "" || req.CourseName == "" || req.InstructorID == 0 {
		return apperrors.NewValidationError("Missing required fields: course_id, course_name, and instructor_id are required")
	}

	exists, err := s.repo.Exists(ctx, req.CourseID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflictError("Course ID already exists")
	}

	instructorExists, err := s.instructors.Exists(ctx, req.InstructorID)
	if err != nil {
		return err
	}
	if !instructorExists {
		return apperrors.NewValidationError("Instructor not found")
	}

	course := &models.Course{
		ID:           req.CourseID,
		Name:         req.CourseName,
		InstructorID: req.InstructorID,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("A course with this ID already exists")
		}
		return err
	}
	return nil
}

// Delete removes a course.
func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewNotFoundError("Course not found")
		}
		return err
	}
	return nil
}
