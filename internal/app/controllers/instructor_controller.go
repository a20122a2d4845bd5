package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/services"
	"github.com/emre/yoklama/internal/middleware"
)

// InstructorController handles instructor-related operations.
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new InstructorController.
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{instructorService: instructorService}
}

// ListInstructors returns instructors matching the optional filters
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Param search query string false "Name, surname or id substring, Turkish-folded"
// @Param department query string false "Exact department name"
// @Success 200 {array} models.Instructor
// @Failure 500 {object} dto.ErrorResponse
// @Router /instructors [get]
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	var query dto.InstructorListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters"))
		return
	}

	instructors, err := c.instructorService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, instructors)
}

// CreateInstructor creates an instructor with an externally assigned id
// @Summary Create instructor
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.CreateInstructorRequest true "Instructor"
// @Success 201 {object} dto.CreatedInstructorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if err := c.instructorService.Create(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedInstructorResponse{
		Success:      true,
		InstructorID: req.InstructorID,
	})
}

// DeleteInstructor deletes an instructor by id
// @Summary Delete instructor
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [delete]
func (c *InstructorController) DeleteInstructor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid instructor ID"))
		return
	}

	if err := c.instructorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
