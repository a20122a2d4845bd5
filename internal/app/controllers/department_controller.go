package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/yoklama/internal/app/services"
	"github.com/emre/yoklama/internal/middleware"
)

// DepartmentController handles department-related operations.
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// ListDepartments returns all departments
// @Summary List departments
// @Description Returns every department, ordered by name
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments [get]
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, departments)
}
