package models

// Instructor defines the instructor model based on the 'instructor' table.
// The ID is externally assigned (entered on the admin form), not generated.
type Instructor struct {
	ID           int64  `json:"instructor_id"`
	Name         string `json:"instructor_name"`
	Surname      string `json:"instructor_surname"`
	Email        string `json:"instructor_email"`
	DepartmentID int64  `json:"department_id,omitempty"`

	// Department name, resolved by the listing join.
	Department string `json:"department,omitempty"`
}
