package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/yoklama/internal/app/models"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// List retrieves courses with instructor names resolved, optionally filtered
// by a search term (course id, course name or instructor id as text) and an
// exact instructor id.
func (r *CourseRepository) List(ctx context.Context, search string, instructorID *int64) ([]*models.Course, error) {
	b := &filterBuilder{}
	if search != "" {
		like := "%" + search + "%"
		b.add(fmt.Sprintf("(c.course_id ILIKE %s OR c.course_name ILIKE %s OR CAST(c.instructor_id AS TEXT) ILIKE %s)",
			b.bind(like), b.bind(like), b.bind(like)))
	}
	if instructorID != nil {
		b.add(fmt.Sprintf("c.instructor_id = %s", b.bind(*instructorID)))
	}

	query := `
		SELECT c.course_id, c.course_name, c.instructor_id,
		       i.instructor_name, i.instructor_surname
		FROM course c
		LEFT JOIN instructor i ON c.instructor_id = i.instructor_id
		WHERE 1=1` + b.clause() + `
		ORDER BY c.course_id`

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.InstructorID,
			&course.InstructorName,
			&course.InstructorSurname,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Exists checks whether a course id is already in use.
func (r *CourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM course WHERE course_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new course with its externally assigned id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO course (course_id, course_name, instructor_id)
		VALUES ($1, $2, $3)
	`, course.ID, course.Name, course.InstructorID)
	return err
}

// Delete removes a course by id.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course WHERE course_id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}
