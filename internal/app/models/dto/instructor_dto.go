package dto

// InstructorListQuery holds the optional filters of GET /instructors.
type InstructorListQuery struct {
	Search     string `form:"search"`
	Department string `form:"department"`
}

// CreateInstructorRequest is the POST /instructors body. The instructor id is
// externally assigned and must not already be in use.
type CreateInstructorRequest struct {
	InstructorID      int64  `json:"instructor_id"`
	InstructorName    string `json:"instructor_name"`
	InstructorSurname string `json:"instructor_surname"`
	InstructorEmail   string `json:"instructor_email"`
	DepartmentID      int64  `json:"department_id"`
}

// CreatedInstructorResponse is the 201 body of POST /instructors.
type CreatedInstructorResponse struct {
	Success      bool  `json:"success"`
	InstructorID int64 `json:"instructor_id"`
}
