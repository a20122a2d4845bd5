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

type mockInstructorStore struct {
	listFn   func(ctx context.Context, search, department string) ([]*models.Instructor, error)
	existsFn func(ctx context.Context, id int64) (bool, error)
	createFn func(ctx context.Context, instructor *models.Instructor) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockInstructorStore) List(ctx context.Context, search, department string) ([]*models.Instructor, error) {
	return m.listFn(ctx, search, department)
}

func (m *mockInstructorStore) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockInstructorStore) Create(ctx context.Context, instructor *models.Instructor) error {
	return m.createFn(ctx, instructor)
}

func (m *mockInstructorStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockDepartmentChecker struct {
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockDepartmentChecker) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

func knownDepartments() *mockDepartmentChecker {
	return &mockDepartmentChecker{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
}

func validInstructorRequest() *dto.CreateInstructorRequest {
	return &dto.CreateInstructorRequest{
		InstructorID:      7,
		InstructorName:    "Zeynep",
		InstructorSurname: "Arslan",
		InstructorEmail:   "zeynep@example.com",
		DepartmentID:      2,
	}
}

func TestInstructorCreateRejectsTakenID(t *testing.T) {
	store := &mockInstructorStore{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}

	err := NewInstructorService(store, knownDepartments()).Create(context.Background(), validInstructorRequest())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err.Error() != "Instructor ID already exists" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestInstructorCreateRequiresFields(t *testing.T) {
	svc := NewInstructorService(&mockInstructorStore{}, knownDepartments())

	err := svc.Create(context.Background(), &dto.CreateInstructorRequest{InstructorID: 7})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestInstructorCreateForwardsFields(t *testing.T) {
	var created *models.Instructor
	store := &mockInstructorStore{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, instructor *models.Instructor) error {
			created = instructor
			return nil
		},
	}

	if err := NewInstructorService(store, knownDepartments()).Create(context.Background(), validInstructorRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 || created.Name != "Zeynep" || created.DepartmentID != 2 {
		t.Errorf("instructor fields not forwarded: %+v", created)
	}
}

func TestInstructorCreateRejectsUnknownDepartment(t *testing.T) {
	store := &mockInstructorStore{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	departments := &mockDepartmentChecker{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}

	err := NewInstructorService(store, departments).Create(context.Background(), validInstructorRequest())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Department not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestInstructorDeleteMapsNotFound(t *testing.T) {
	store := &mockInstructorStore{
		deleteFn: func(ctx context.Context, id int64) error { return repositories.ErrInstructorNotFound },
	}

	err := NewInstructorService(store, knownDepartments()).Delete(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err.Error() != "Instructor not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
