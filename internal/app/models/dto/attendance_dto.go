package dto

// AttendanceListQuery holds the optional, independently combinable filters of
// GET /attendance.
type AttendanceListQuery struct {
	NameSurname string `form:"name_surname"`
	Course      string `form:"course"`
	Date        string `form:"date"`
	Search      string `form:"search"`
}

// AttendanceRecordResponse is one shaped listing row. Students with no
// matching attendance row carry the sentinel status and HasNoAttendance=true
// so consumers need not string-compare the sentinel.
type AttendanceRecordResponse struct {
	StudentName     string `json:"studentName"`
	StudentSurname  string `json:"studentSurname"`
	Course          string `json:"course"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	HasNoAttendance bool   `json:"hasNoAttendance"`
}

// CreateAttendanceRequest is the POST /attendance body. Status defaults to
// "present" when omitted.
type CreateAttendanceRequest struct {
	StudentID      int64  `json:"student_id"`
	CourseID       string `json:"course_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}

// CreatedAttendanceResponse is the 201 body of POST /attendance.
type CreatedAttendanceResponse struct {
	Success      bool  `json:"success"`
	AttendanceID int64 `json:"attendance_id"`
}
