package dto

// CourseListQuery holds the optional filters of GET /courses.
type CourseListQuery struct {
	Search       string `form:"search"`
	InstructorID string `form:"instructor_id"`
}

// CreateCourseRequest is the POST /courses body.
type CreateCourseRequest struct {
	CourseID     string `json:"course_id"`
	CourseName   string `json:"course_name"`
	InstructorID int64  `json:"instructor_id"`
}

// CreatedCourseResponse is the 201 body of POST /courses.
type CreatedCourseResponse struct {
	Success  bool   `json:"success"`
	CourseID string `json:"course_id"`
}
