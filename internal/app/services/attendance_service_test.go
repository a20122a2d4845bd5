package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
)

type mockAttendanceStore struct {
	listFn   func(ctx context.Context, f repositories.AttendanceFilters) ([]*models.AttendanceRow, error)
	createFn func(ctx context.Context, attendance *models.Attendance) error
}

func (m *mockAttendanceStore) List(ctx context.Context, f repositories.AttendanceFilters) ([]*models.AttendanceRow, error) {
	return m.listFn(ctx, f)
}

func (m *mockAttendanceStore) Create(ctx context.Context, attendance *models.Attendance) error {
	return m.createFn(ctx, attendance)
}

func strPtr(s string) *string { return &s }

func TestAttendanceListShapesRows(t *testing.T) {
	course := "Intro to CS"
	date := time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC)
	status := "present"

	store := &mockAttendanceStore{
		listFn: func(ctx context.Context, f repositories.AttendanceFilters) ([]*models.AttendanceRow, error) {
			return []*models.AttendanceRow{
				{
					StudentID:      1,
					StudentName:    "Ayşe",
					StudentSurname: "Yılmaz",
					CourseName:     &course,
					Date:           &date,
					Status:         &status,
				},
				{
					StudentID:       2,
					StudentName:     "Mehmet",
					StudentSurname:  "Demir",
					HasNoAttendance: true,
				},
			}, nil
		},
	}

	records, err := NewAttendanceService(store).List(context.Background(), dto.AttendanceListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	attended := records[0]
	if attended.Course != "Intro to CS" || attended.Date != "16.11.2025" || attended.Status != "Present" {
		t.Errorf("attended row shaped wrong: %+v", attended)
	}
	if attended.HasNoAttendance {
		t.Error("attended row flagged as having no attendance")
	}

	absent := records[1]
	if absent.Course != "No course assigned" {
		t.Errorf("expected course placeholder, got %q", absent.Course)
	}
	if absent.Date != "N/A" {
		t.Errorf("expected date placeholder, got %q", absent.Date)
	}
	if absent.Status != "No attendance record yet" {
		t.Errorf("expected no-record sentinel, got %q", absent.Status)
	}
	if !absent.HasNoAttendance {
		t.Error("no-record row must carry the HasNoAttendance flag")
	}
}

func TestAttendanceListParsesDateFilter(t *testing.T) {
	var got repositories.AttendanceFilters
	store := &mockAttendanceStore{
		listFn: func(ctx context.Context, f repositories.AttendanceFilters) ([]*models.AttendanceRow, error) {
			got = f
			return nil, nil
		},
	}

	_, err := NewAttendanceService(store).List(context.Background(), dto.AttendanceListQuery{Date: "2025-11-16"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date == nil || !got.Date.Equal(time.Date(2025, 11, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date filter not parsed: %v", got.Date)
	}
}

func TestAttendanceListRejectsBadDate(t *testing.T) {
	store := &mockAttendanceStore{
		listFn: func(ctx context.Context, f repositories.AttendanceFilters) ([]*models.AttendanceRow, error) {
			t.Fatal("store must not be reached on a bad date")
			return nil, nil
		},
	}

	_, err := NewAttendanceService(store).List(context.Background(), dto.AttendanceListQuery{Date: "16.11.2025"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAttendanceCreateDefaultsStatusToPresent(t *testing.T) {
	var created *models.Attendance
	store := &mockAttendanceStore{
		createFn: func(ctx context.Context, attendance *models.Attendance) error {
			attendance.ID = 42
			created = attendance
			return nil
		},
	}

	id, err := NewAttendanceService(store).Create(context.Background(), &dto.CreateAttendanceRequest{
		StudentID:      1,
		CourseID:       "CS101",
		AttendanceDate: "2025-11-16",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected generated id 42, got %d", id)
	}
	if created.Status != models.StatusPresent {
		t.Errorf("expected default status %q, got %q", models.StatusPresent, created.Status)
	}
}

func TestAttendanceCreateRequiresFields(t *testing.T) {
	store := &mockAttendanceStore{
		createFn: func(ctx context.Context, attendance *models.Attendance) error {
			t.Fatal("store must not be reached on missing fields")
			return nil
		},
	}

	_, err := NewAttendanceService(store).Create(context.Background(), &dto.CreateAttendanceRequest{
		StudentID: 1,
		CourseID:  "CS101",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Missing required fields" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestAttendanceStatusCapitalization(t *testing.T) {
	row := &models.AttendanceRow{
		StudentName:    "Ali",
		StudentSurname: "Kaya",
		Status:         strPtr("absent"),
	}
	if got := shapeAttendanceRow(row).Status; got != "Absent" {
		t.Errorf("expected %q, got %q", "Absent", got)
	}
}
