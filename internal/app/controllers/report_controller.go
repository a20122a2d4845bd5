package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/services"
	"github.com/emre/yoklama/internal/middleware"
)

// ReportController serves the two aggregate attendance reports.
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController.
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// AttendanceSummary returns each course's recorded date range
// @Summary Attendance summary report
// @Tags reports
// @Produce json
// @Param course query string false "Exact course name"
// @Param department query string false "Exact department name"
// @Param start_date query string false "Lower bound, YYYY-MM-DD"
// @Param end_date query string false "Upper bound, YYYY-MM-DD"
// @Success 200 {array} dto.AttendanceSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports/attendance-summary [get]
func (c *ReportController) AttendanceSummary(ctx *gin.Context) {
	var query dto.SummaryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters"))
		return
	}

	summaries, err := c.reportService.Summary(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// AttendanceRate returns each course's rounded present-percentage
// @Summary Attendance rate report
// @Tags reports
// @Produce json
// @Param course query string false "Exact course name"
// @Param department query string false "Exact department name"
// @Success 200 {array} dto.AttendanceRateResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/attendance-rate [get]
func (c *ReportController) AttendanceRate(ctx *gin.Context) {
	var query dto.RateQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters"))
		return
	}

	rates, err := c.reportService.Rates(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rates)
}
