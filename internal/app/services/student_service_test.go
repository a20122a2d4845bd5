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

type mockStudentStore struct {
	listFn              func(ctx context.Context, search, department string) ([]*models.Student, error)
	getByIDFn           func(ctx context.Context, id int64) (*models.Student, error)
	createWithCoursesFn func(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	updateFn            func(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	deleteFn            func(ctx context.Context, id int64) error
	listEnrollmentsFn   func(ctx context.Context, search, course string) ([]*models.Enrollment, error)
}

func (m *mockStudentStore) List(ctx context.Context, search, department string) ([]*models.Student, error) {
	return m.listFn(ctx, search, department)
}

func (m *mockStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockStudentStore) CreateWithCourses(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	return m.createWithCoursesFn(ctx, req)
}

func (m *mockStudentStore) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	return m.updateFn(ctx, id, req)
}

func (m *mockStudentStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockStudentStore) ListEnrollments(ctx context.Context, search, course string) ([]*models.Enrollment, error) {
	return m.listEnrollmentsFn(ctx, search, course)
}

func TestStudentCreateRequiresFields(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{})

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{Name: "Ayşe"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Missing required fields: name, surname, email, and department are required" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStudentCreateMapsUnknownDepartment(t *testing.T) {
	store := &mockStudentStore{
		createWithCoursesFn: func(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
			return 0, repositories.ErrDepartmentNotFound
		},
	}

	_, err := NewStudentService(store).Create(context.Background(), &dto.CreateStudentRequest{
		Name:       "Ayşe",
		Surname:    "Yılmaz",
		Email:      "ayse@example.com",
		Department: "Astrology",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != `Department "Astrology" not found` {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStudentCreateReturnsGeneratedID(t *testing.T) {
	store := &mockStudentStore{
		createWithCoursesFn: func(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
			return 17, nil
		},
	}

	id, err := NewStudentService(store).Create(context.Background(), &dto.CreateStudentRequest{
		Name:       "Ayşe",
		Surname:    "Yılmaz",
		Email:      "ayse@example.com",
		Department: "Computer Engineering",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 17 {
		t.Errorf("expected generated id 17, got %d", id)
	}
}

func TestStudentGetMapsNotFound(t *testing.T) {
	store := &mockStudentStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.Student, error) {
			return nil, repositories.ErrStudentNotFound
		},
	}

	_, err := NewStudentService(store).GetByID(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if err.Error() != "Student not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStudentDeleteMapsNotFound(t *testing.T) {
	store := &mockStudentStore{
		deleteFn: func(ctx context.Context, id int64) error { return repositories.ErrStudentNotFound },
	}

	err := NewStudentService(store).Delete(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestStudentListForwardsFilters(t *testing.T) {
	var gotSearch, gotDepartment string
	store := &mockStudentStore{
		listFn: func(ctx context.Context, search, department string) ([]*models.Student, error) {
			gotSearch, gotDepartment = search, department
			return nil, nil
		},
	}

	_, err := NewStudentService(store).List(context.Background(), dto.StudentListQuery{
		Search:     "ayse",
		Department: "Computer Engineering",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSearch != "ayse" || gotDepartment != "Computer Engineering" {
		t.Errorf("filters not forwarded: search=%q department=%q", gotSearch, gotDepartment)
	}
}
