package services

import (
	"context"
	"strings"
	"time"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
	"github.com/emre/yoklama/internal/pkg/helpers"
)

// Placeholder values in the shaped listing output.
const (
	noCoursePlaceholder = "No course assigned"
	noDatePlaceholder   = "N/A"
	// noAttendanceSentinel marks students with no matching attendance row.
	// The HasNoAttendance flag carries the same fact so clients need not
	// compare against this string.
	noAttendanceSentinel = "No attendance record yet"
)

// AttendanceStore is the persistence surface the attendance service needs.
type AttendanceStore interface {
	List(ctx context.Context, f repositories.AttendanceFilters) ([]*models.AttendanceRow, error)
	Create(ctx context.Context, attendance *models.Attendance) error
}

// AttendanceService handles the all-students attendance listing and record
// creation.
type AttendanceService interface {
	List(ctx context.Context, q dto.AttendanceListQuery) ([]dto.AttendanceRecordResponse, error)
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (int64, error)
}

type attendanceService struct {
	repo AttendanceStore
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(repo AttendanceStore) AttendanceService {
	return &attendanceService{repo: repo}
}

// List returns one shaped row per (student, matching attendance-or-absence)
// pair. Students with no matching attendance row appear once with the
// sentinel status; the repository keeps them in the base set even under a
// date filter.
func (s *attendanceService) List(ctx context.Context, q dto.AttendanceListQuery) ([]dto.AttendanceRecordResponse, error) {
	filters := repositories.AttendanceFilters{
		NameSurname: q.NameSurname,
		Course:      q.Course,
		Search:      q.Search,
	}

	if q.Date != "" {
		date, err := time.Parse(helpers.ISODateLayout, q.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid date format, expected YYYY-MM-DD")
		}
		filters.Date = &date
	}

	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	records := make([]dto.AttendanceRecordResponse, 0, len(rows))
	for _, row := range rows {
		records = append(records, shapeAttendanceRow(row))
	}
	return records, nil
}

func shapeAttendanceRow(row *models.AttendanceRow) dto.AttendanceRecordResponse {
	record := dto.AttendanceRecordResponse{
		StudentName:     row.StudentName,
		StudentSurname:  row.StudentSurname,
		Course:          noCoursePlaceholder,
		Date:            noDatePlaceholder,
		Status:          noAttendanceSentinel,
		HasNoAttendance: row.HasNoAttendance,
	}
	if row.CourseName != nil {
		record.Course = *row.CourseName
	}
	if row.Date != nil {
		record.Date = helpers.FormatDisplayDate(*row.Date)
	}
	if row.Status != nil {
		record.Status = capitalize(*row.Status)
	}
	return record
}

// capitalize uppercases the first letter of a stored status value
// ("present" -> "Present").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Create records one attendance row. Status defaults to "present"; there is
// no duplicate check for (student, course, date).
func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (int64, error) {
	if req.StudentID == 0 || req.CourseID == "" || req.AttendanceDate == "" {
		return 0, apperrors.NewValidationError("Missing required fields")
	}

	date, err := time.Parse(helpers.ISODateLayout, req.AttendanceDate)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}

	status := req.Status
	if status == "" {
		status = models.StatusPresent
	}

	attendance := &models.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      date,
		Status:    status,
	}
	if err := s.repo.Create(ctx, attendance); err != nil {
		return 0, err
	}

	return attendance.ID, nil
}
