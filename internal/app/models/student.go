package models

// Student defines the student model based on the 'student' table.
type Student struct {
	ID      int64  `json:"student_id"`
	Name    string `json:"student_name"`
	Surname string `json:"student_surname"`
	Email   string `json:"student_email"`

	// PhotoPath and FaceData are opaque references filled by external tooling;
	// this service only stores and returns them.
	PhotoPath *string `json:"photo_path"`
	FaceData  *string `json:"face_data"`

	DepartmentID int64 `json:"-"`

	// Department name, resolved by the listing join.
	Department *string `json:"department"`
}

// Enrollment is one student_course junction row joined with both sides.
type Enrollment struct {
	StudentID      int64  `json:"student_id"`
	StudentName    string `json:"student_name"`
	StudentSurname string `json:"student_surname"`
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
}
