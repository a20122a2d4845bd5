package dto

// StudentListQuery holds the optional filters of GET /students.
type StudentListQuery struct {
	Search     string `form:"search"`
	Department string `form:"department"`
}

// EnrollmentListQuery holds the optional filters of GET /students/courses.
type EnrollmentListQuery struct {
	Search string `form:"search"`
	Course string `form:"course"`
}

// CreateStudentRequest is the POST /students body. Department is a department
// name, resolved to an id at write time. Courses holds course ids to enroll
// the student in; unknown ids are skipped.
type CreateStudentRequest struct {
	Name       string   `json:"name"`
	Surname    string   `json:"surname"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	PhotoPath  *string  `json:"photo_path"`
	FaceData   *string  `json:"face_data"`
	Courses    []string `json:"courses"`
}

// UpdateStudentRequest is the PUT /students/:id body. Nil fields keep their
// stored value (coalesce-on-write).
type UpdateStudentRequest struct {
	Name       *string `json:"name"`
	Surname    *string `json:"surname"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	PhotoPath  *string `json:"photo_path"`
	FaceData   *string `json:"face_data"`
}

// CreatedStudentResponse is the 201 body of POST /students.
type CreatedStudentResponse struct {
	Success   bool  `json:"success"`
	StudentID int64 `json:"student_id"`
}
