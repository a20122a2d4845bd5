package dto

// SummaryQuery holds the optional filters of GET /reports/attendance-summary.
type SummaryQuery struct {
	Course     string `form:"course"`
	Department string `form:"department"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// RateQuery holds the optional filters of GET /reports/attendance-rate.
type RateQuery struct {
	Course     string `form:"course"`
	Department string `form:"department"`
}

// AttendanceSummaryResponse is one course's recorded date range, formatted
// dd.mm.yyyy (empty when the aggregate is NULL).
type AttendanceSummaryResponse struct {
	Course    string `json:"course"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AttendanceRateResponse is one course's present-percentage, rounded to the
// nearest whole number. Courses with zero attendance rows are omitted.
type AttendanceRateResponse struct {
	Course string `json:"course"`
	Rate   int    `json:"rate"`
}
