package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/yoklama/internal/app/models"
)

// ReportFilters narrow both report queries. Course and Department are exact
// names; the date bounds apply to the summary report only.
type ReportFilters struct {
	Course     string
	Department string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ReportRepository runs the read-only aggregate queries behind /reports.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

func (f ReportFilters) apply(b *filterBuilder) {
	if f.Course != "" {
		b.add(fmt.Sprintf("c.course_name = %s", b.bind(f.Course)))
	}
	if f.Department != "" {
		b.add(fmt.Sprintf("d.department_name = %s", b.bind(f.Department)))
	}
	if f.StartDate != nil {
		b.add(fmt.Sprintf("a.attendance_date >= %s", b.bind(*f.StartDate)))
	}
	if f.EndDate != nil {
		b.add(fmt.Sprintf("a.attendance_date <= %s", b.bind(*f.EndDate)))
	}
}

// DateRanges returns the earliest and latest attendance date per course,
// grouped by course name ascending. Courses with no attendance rows inside
// the filter window do not appear.
func (r *ReportRepository) DateRanges(ctx context.Context, f ReportFilters) ([]*models.CourseDateRange, error) {
	b := &filterBuilder{}
	f.apply(b)

	query := `
		SELECT c.course_name AS course,
		       MIN(a.attendance_date) AS start_date,
		       MAX(a.attendance_date) AS end_date
		FROM attendance a
		JOIN course c ON a.course_id = c.course_id
		JOIN student s ON a.student_id = s.student_id
		JOIN department d ON s.department_id = d.department_id
		WHERE 1=1` + b.clause() + `
		GROUP BY c.course_name
		ORDER BY c.course_name`

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranges []*models.CourseDateRange
	for rows.Next() {
		var rangeRow models.CourseDateRange
		if err := rows.Scan(&rangeRow.CourseName, &rangeRow.StartDate, &rangeRow.EndDate); err != nil {
			return nil, err
		}
		ranges = append(ranges, &rangeRow)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranges, nil
}

// Rates returns the raw present-percentage per course. The inner joins
// exclude courses with zero attendance rows, and NULLIF guards the division
// anyway. Rounding happens in the service.
func (r *ReportRepository) Rates(ctx context.Context, f ReportFilters) ([]*models.CourseRate, error) {
	b := &filterBuilder{}
	f.apply(b)

	query := `
		SELECT c.course_name AS course,
		       COUNT(CASE WHEN a.status = 'present' THEN 1 END) * 100.0 /
		       NULLIF(COUNT(*), 0) AS rate
		FROM attendance a
		JOIN course c ON a.course_id = c.course_id
		JOIN student s ON a.student_id = s.student_id
		JOIN department d ON s.department_id = d.department_id
		WHERE 1=1` + b.clause() + `
		GROUP BY c.course_name
		ORDER BY c.course_name`

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []*models.CourseRate
	for rows.Next() {
		var rate models.CourseRate
		if err := rows.Scan(&rate.CourseName, &rate.Rate); err != nil {
			return nil, err
		}
		rates = append(rates, &rate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rates, nil
}
