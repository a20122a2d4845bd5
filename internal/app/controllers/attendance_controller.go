package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/services"
	"github.com/emre/yoklama/internal/middleware"
)

// AttendanceController handles the attendance listing and record creation.
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// ListAttendance returns the shaped per-student attendance rows
// @Summary List attendance
// @Description Every student appears at least once; students without a matching record carry sentinel values
// @Tags attendance
// @Produce json
// @Param name_surname query string false "Student name or surname substring, Turkish-folded"
// @Param course query string false "Exact course name; matches attendance or enrollment"
// @Param date query string false "Exact date, YYYY-MM-DD"
// @Param search query string false "Free text over student and course names"
// @Success 200 {array} dto.AttendanceRecordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	var query dto.AttendanceListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters"))
		return
	}

	records, err := c.attendanceService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// CreateAttendance records one attendance row
// @Summary Create attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CreateAttendanceRequest true "Attendance record"
// @Success 201 {object} dto.CreatedAttendanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	id, err := c.attendanceService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedAttendanceResponse{
		Success:      true,
		AttendanceID: id,
	})
}
