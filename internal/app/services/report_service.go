package services

import (
	"context"
	"math"
	"time"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
	"github.com/emre/yoklama/internal/pkg/helpers"
)

// ReportStore is the persistence surface the report service needs.
type ReportStore interface {
	DateRanges(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseDateRange, error)
	Rates(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseRate, error)
}

// ReportService runs the two aggregate attendance reports.
type ReportService interface {
	Summary(ctx context.Context, q dto.SummaryQuery) ([]dto.AttendanceSummaryResponse, error)
	Rates(ctx context.Context, q dto.RateQuery) ([]dto.AttendanceRateResponse, error)
}

type reportService struct {
	repo ReportStore
}

// NewReportService creates a new report service.
func NewReportService(repo ReportStore) ReportService {
	return &reportService{repo: repo}
}

// Summary returns the first and last recorded attendance date per course,
// formatted for display.
func (s *reportService) Summary(ctx context.Context, q dto.SummaryQuery) ([]dto.AttendanceSummaryResponse, error) {
	filters := repositories.ReportFilters{
		Course:     q.Course,
		Department: q.Department,
	}

	startDate, err := parseOptionalDate(q.StartDate)
	if err != nil {
		return nil, err
	}
	filters.StartDate = startDate

	endDate, err := parseOptionalDate(q.EndDate)
	if err != nil {
		return nil, err
	}
	filters.EndDate = endDate

	ranges, err := s.repo.DateRanges(ctx, filters)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.AttendanceSummaryResponse, 0, len(ranges))
	for _, r := range ranges {
		summaries = append(summaries, dto.AttendanceSummaryResponse{
			Course:    r.CourseName,
			StartDate: formatOptionalDate(r.StartDate),
			EndDate:   formatOptionalDate(r.EndDate),
		})
	}
	return summaries, nil
}

// Rates returns the present-percentage per course, rounded to the nearest
// whole number. Courses with no attendance rows never reach this layer.
func (s *reportService) Rates(ctx context.Context, q dto.RateQuery) ([]dto.AttendanceRateResponse, error) {
	rates, err := s.repo.Rates(ctx, repositories.ReportFilters{
		Course:     q.Course,
		Department: q.Department,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttendanceRateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, dto.AttendanceRateResponse{
			Course: r.CourseName,
			Rate:   int(math.Round(r.Rate)),
		})
	}
	return responses, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(helpers.ISODateLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}
	return &date, nil
}

func formatOptionalDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return helpers.FormatDisplayDate(*date)
}
