package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/yoklama/internal/app/models"
)

// AttendanceFilters are the optional, independently combinable filters of the
// attendance listing. Date is parsed upstream; nil means no date filter.
type AttendanceFilters struct {
	NameSurname string
	Course      string
	Search      string
	Date        *time.Time
}

// AttendanceRepository handles database operations for attendance records.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// buildAttendanceListQuery renders the listing query. The universe is every
// student, LEFT JOINed to attendance (and through it to course), so students
// with no attendance rows still produce one output row each.
//
// The date filter narrows the JOIN condition, not the WHERE clause: on a
// date-filtered listing a student with no attendance that day still appears,
// with the no-record sentinel, unless a course or search filter removes the
// row. The course filter is a union: attendance in the course OR an
// enrollment row for it.
func buildAttendanceListQuery(f AttendanceFilters) (string, []any) {
	b := &filterBuilder{}

	joinCond := "s.student_id = a.student_id"
	if f.Date != nil {
		joinCond += " AND a.attendance_date = " + b.bind(*f.Date)
	}

	if f.NameSurname != "" {
		b.add(turkishNameMatch(b, "s.student_name", "s.student_surname", f.NameSurname))
	}

	if f.Course != "" {
		b.add(fmt.Sprintf(`(c.course_name = %s OR s.student_id IN (
			SELECT sc.student_id
			FROM student_course sc
			JOIN course co ON sc.course_id = co.course_id
			WHERE co.course_name = %s
		))`, b.bind(f.Course), b.bind(f.Course)))
	}

	if f.Search != "" {
		nameMatch := turkishNameMatch(b, "s.student_name", "s.student_surname", f.Search)
		courseMatch := fmt.Sprintf("COALESCE(c.course_name, '') ILIKE %s", b.bind("%"+f.Search+"%"))
		b.add(fmt.Sprintf("(%s OR %s)", nameMatch, courseMatch))
	}

	query := `
		SELECT s.student_id, s.student_name, s.student_surname,
		       c.course_name, a.attendance_date, a.status::text,
		       a.attendance_id IS NULL AS has_no_attendance
		FROM student s
		LEFT JOIN attendance a ON ` + joinCond + `
		LEFT JOIN course c ON a.course_id = c.course_id
		WHERE 1=1` + b.clause() + `
		ORDER BY CASE WHEN a.attendance_date IS NULL THEN 1 ELSE 0 END,
		         COALESCE(a.attendance_date, DATE '1900-01-01') DESC,
		         s.student_name`

	return query, b.args
}

// List runs the listing query and returns raw rows; shaping (sentinels, date
// formatting, status capitalization) happens in the service.
func (r *AttendanceRepository) List(ctx context.Context, f AttendanceFilters) ([]*models.AttendanceRow, error) {
	query, args := buildAttendanceListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRow
	for rows.Next() {
		var record models.AttendanceRow
		if err := rows.Scan(
			&record.StudentID,
			&record.StudentName,
			&record.StudentSurname,
			&record.CourseName,
			&record.Date,
			&record.Status,
			&record.HasNoAttendance,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Create inserts one attendance row and fills in the generated id. There is
// no uniqueness on (student, course, date); repeated records are allowed,
// matching the store schema.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO attendance (student_id, course_id, attendance_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING attendance_id
	`, attendance.StudentID, attendance.CourseID, attendance.Date, attendance.Status).Scan(&attendance.ID)
}
