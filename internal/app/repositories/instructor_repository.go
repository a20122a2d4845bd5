package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/yoklama/internal/app/models"
)

// Instructor error types
var (
	ErrInstructorNotFound = errors.New("instructor not found")
)

// InstructorRepository handles database operations for instructors.
type InstructorRepository struct {
	db *pgxpool.Pool
}

// NewInstructorRepository creates a new instructor repository.
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List retrieves instructors with their department name resolved, optionally
// filtered by a search term (name, surname or id as text, Turkish-folded) and
// an exact department name.
func (r *InstructorRepository) List(ctx context.Context, search, department string) ([]*models.Instructor, error) {
	b := &filterBuilder{}
	if search != "" {
		nameMatch := turkishNameMatch(b, "i.instructor_name", "i.instructor_surname", search)
		idMatch := fmt.Sprintf("CAST(i.instructor_id AS TEXT) ILIKE %s", b.bind("%"+search+"%"))
		b.add(fmt.Sprintf("(%s OR %s)", nameMatch, idMatch))
	}
	if department != "" {
		b.add(fmt.Sprintf("d.department_name = %s", b.bind(department)))
	}

	query := `
		SELECT i.instructor_id, i.instructor_name, i.instructor_surname,
		       i.instructor_email, d.department_name AS department
		FROM instructor i
		LEFT JOIN department d ON i.department_id = d.department_id
		WHERE 1=1` + b.clause() + `
		ORDER BY i.instructor_id`

	rows, err := r.db.Query(ctx, query, b.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.Instructor
	for rows.Next() {
		var instructor models.Instructor
		var department *string
		if err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
			&instructor.Surname,
			&instructor.Email,
			&department,
		); err != nil {
			return nil, err
		}
		if department != nil {
			instructor.Department = *department
		}
		instructors = append(instructors, &instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return instructors, nil
}

// Exists checks whether an instructor id is already in use.
func (r *InstructorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM instructor WHERE instructor_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking instructor existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new instructor with its externally assigned id.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO instructor (instructor_id, instructor_name, instructor_surname,
		                        instructor_email, department_id)
		VALUES ($1, $2, $3, $4, $5)
	`, instructor.ID, instructor.Name, instructor.Surname, instructor.Email, instructor.DepartmentID)
	return err
}

// Delete removes an instructor by id.
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM instructor WHERE instructor_id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrInstructorNotFound
	}
	return nil
}
