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

type mockReportStore struct {
	dateRangesFn func(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseDateRange, error)
	ratesFn      func(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseRate, error)
}

func (m *mockReportStore) DateRanges(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseDateRange, error) {
	return m.dateRangesFn(ctx, f)
}

func (m *mockReportStore) Rates(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseRate, error) {
	return m.ratesFn(ctx, f)
}

func TestReportSummaryFormatsDates(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC)
	store := &mockReportStore{
		dateRangesFn: func(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseDateRange, error) {
			return []*models.CourseDateRange{
				{CourseName: "Intro to CS", StartDate: &start, EndDate: &end},
			}, nil
		},
	}

	summaries, err := NewReportService(store).Summary(context.Background(), dto.SummaryQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.Course != "Intro to CS" || got.StartDate != "01.09.2025" || got.EndDate != "19.12.2025" {
		t.Errorf("summary shaped wrong: %+v", got)
	}
}

func TestReportSummaryParsesDateBounds(t *testing.T) {
	var got repositories.ReportFilters
	store := &mockReportStore{
		dateRangesFn: func(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseDateRange, error) {
			got = f
			return nil, nil
		},
	}

	_, err := NewReportService(store).Summary(context.Background(), dto.SummaryQuery{
		StartDate: "2025-09-01",
		EndDate:   "2025-12-19",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StartDate == nil || got.EndDate == nil {
		t.Fatal("date bounds not forwarded")
	}
	if !got.StartDate.Before(*got.EndDate) {
		t.Errorf("bounds out of order: %v .. %v", got.StartDate, got.EndDate)
	}
}

func TestReportSummaryRejectsBadDate(t *testing.T) {
	store := &mockReportStore{
		dateRangesFn: func(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseDateRange, error) {
			t.Fatal("store must not be reached on a bad date")
			return nil, nil
		},
	}

	_, err := NewReportService(store).Summary(context.Background(), dto.SummaryQuery{StartDate: "01.09.2025"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestReportRatesRoundToNearestWhole(t *testing.T) {
	store := &mockReportStore{
		ratesFn: func(ctx context.Context, f repositories.ReportFilters) ([]*models.CourseRate, error) {
			// 3 present out of 4 and 2 out of 3.
			return []*models.CourseRate{
				{CourseName: "Intro to CS", Rate: 75.0},
				{CourseName: "Linear Algebra", Rate: 66.666666},
			}, nil
		},
	}

	rates, err := NewReportService(store).Rates(context.Background(), dto.RateQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].Rate != 75 {
		t.Errorf("expected 75, got %d", rates[0].Rate)
	}
	if rates[1].Rate != 67 {
		t.Errorf("expected 67, got %d", rates[1].Rate)
	}
}
