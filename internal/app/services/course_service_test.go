package services

import (
	"context"
	"errors"
	"testing"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
)

type mockCourseStore struct {
	listFn   func(ctx context.Context, search string, instructorID *int64) ([]*models.Course, error)
	existsFn func(ctx context.Context, id string) (bool, error)
	createFn func(ctx context.Context, course *models.Course) error
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCourseStore) List(ctx context.Context, search string, instructorID *int64) ([]*models.Course, error) {
	return m.listFn(ctx, search, instructorID)
}

func (m *mockCourseStore) Exists(ctx context.Context, id string) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockCourseStore) Create(ctx context.Context, course *models.Course) error {
	return m.createFn(ctx, course)
}

func (m *mockCourseStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockInstructorChecker struct {
	exists bool
	err    error
}

func (m *mockInstructorChecker) Exists(ctx context.Context, id int64) (bool, error) {
	return m.exists, m.err
}

func TestCourseCreateRejectsUnknownInstructor(t *testing.T) {
	store := &mockCourseStore{
		existsFn: func(ctx context.Context, id string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, course *models.Course) error {
			t.Fatal("store must not be reached when the instructor is unknown")
			return nil
		},
	}

	err := NewCourseService(store, &mockInstructorChecker{exists: false}).Create(context.Background(), &dto.CreateCourseRequest{
		CourseID:     "CS101",
		CourseName:   "Intro to CS",
		InstructorID: 7,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Instructor not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestCourseCreateRejectsDuplicateID(t *testing.T) {
	store := &mockCourseStore{
		existsFn: func(ctx context.Context, id string) (bool, error) { return true, nil },
	}

	err := NewCourseService(store, &mockInstructorChecker{exists: true}).Create(context.Background(), &dto.CreateCourseRequest{
		CourseID:     "CS101",
		CourseName:   "Intro to CS",
		InstructorID: 7,
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err.Error() != "Course ID already exists" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestCourseCreateRequiresFields(t *testing.T) {
	svc := NewCourseService(&mockCourseStore{}, &mockInstructorChecker{})

	err := svc.Create(context.Background(), &dto.CreateCourseRequest{CourseID: "CS101"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCourseListParsesInstructorID(t *testing.T) {
	var got *int64
	store := &mockCourseStore{
		listFn: func(ctx context.Context, search string, instructorID *int64) ([]*models.Course, error) {
			got = instructorID
			return nil, nil
		},
	}

	_, err := NewCourseService(store, &mockInstructorChecker{}).List(context.Background(), dto.CourseListQuery{InstructorID: "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != 7 {
		t.Errorf("instructor id not forwarded: %v", got)
	}
}

func TestCourseListRejectsBadInstructorID(t *testing.T) {
	store := &mockCourseStore{
		listFn: func(ctx context.Context, search string, instructorID *int64) ([]*models.Course, error) {
			t.Fatal("store must not be reached on a bad instructor_id")
			return nil, nil
		},
	}

	_, err := NewCourseService(store, &mockInstructorChecker{}).List(context.Background(), dto.CourseListQuery{InstructorID: "seven"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCourseDeleteMapsNotFound(t *testing.T) {
	store := &mockCourseStore{
		deleteFn: func(ctx context.Context, id string) error { return repositories.ErrCourseNotFound },
	}

	err := NewCourseService(store, &mockInstructorChecker{}).Delete(context.Background(), "CS999")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err.Error() != "Course not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
