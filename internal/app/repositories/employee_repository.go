package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/yoklama/internal/app/models"
)

// Employee error types
var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

// EmployeeRepository handles database operations for admin panel users.
type EmployeeRepository struct {
	db *pgxpool.Pool
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// GetByUsername retrieves an employee including the password hash.
func (r *EmployeeRepository) GetByUsername(ctx context.Context, username string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.QueryRow(ctx, `
		SELECT employee_id, username, password, email, first_name, last_name
		FROM employee
		WHERE username = $1
	`, username).Scan(
		&employee.ID,
		&employee.Username,
		&employee.Password,
		&employee.Email,
		&employee.FirstName,
		&employee.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}

	return &employee, nil
}

// UsernameExists checks whether a username is already registered.
func (r *EmployeeRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employee WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}
	return exists, nil
}

// EmailExists checks whether an email is already registered.
func (r *EmployeeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employee WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// Create inserts a new employee and fills in the generated id. The password
// field must already be hashed.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO employee (username, password, email, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING employee_id
	`, employee.Username, employee.Password, employee.Email, employee.FirstName, employee.LastName).Scan(&employee.ID)
}
