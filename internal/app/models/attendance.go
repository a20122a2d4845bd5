package models

import "time"

// Attendance status values stored in the attendance_status enum.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Attendance defines one recorded attendance row.
type Attendance struct {
	ID        int64     `json:"attendance_id"`
	StudentID int64     `json:"student_id"`
	CourseID  string    `json:"course_id"`
	Date      time.Time `json:"attendance_date"`
	Status    string    `json:"status"`
}

// AttendanceRow is one row of the listing query: every student left-joined to
// its attendance records. Course, Date and Status are nil for students with no
// matching attendance row.
type AttendanceRow struct {
	StudentID       int64
	StudentName     string
	StudentSurname  string
	CourseName      *string
	Date            *time.Time
	Status          *string
	HasNoAttendance bool
}

// CourseDateRange is the attendance-summary aggregate for one course.
type CourseDateRange struct {
	CourseName string
	StartDate  *time.Time
	EndDate    *time.Time
}

// CourseRate is the raw attendance-rate aggregate for one course.
type CourseRate struct {
	CourseName string
	Rate       float64
}
