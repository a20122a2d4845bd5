package models

// Course defines the course model based on the 'course' table. Course IDs are
// externally assigned codes such as "CS101".
type Course struct {
	ID           string `json:"course_id"`
	Name         string `json:"course_name"`
	InstructorID int64  `json:"instructor_id"`

	// Instructor names, resolved by the listing join.
	InstructorName    *string `json:"instructor_name,omitempty"`
	InstructorSurname *string `json:"instructor_surname,omitempty"`
}
