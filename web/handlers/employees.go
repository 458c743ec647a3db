package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/directory"
	"hrmslite.com/hrmslite/model"
	"hrmslite.com/hrmslite/utils"
	"hrmslite.com/hrmslite/web/common"
)

type EmployeeEndpoint struct {
	store *core.Store
}

func RegisterEmployees(r *gin.RouterGroup, store *core.Store) {
	ep := &EmployeeEndpoint{store: store}
	r.POST("/employees", ep.Add)
	r.GET("/employees", ep.List)
	r.GET("/employees/:id", ep.Get)
	r.PUT("/employees/:id", ep.Update)
	r.DELETE("/employees/:id", ep.Delete)
}

type AddEmployeeDTO struct {
	EmployeeID string `json:"employeeId" binding:"required,min=3,max=20,alphanum"`
	FullName   string `json:"fullName" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required,min=2,max=50"`
	Role       string `json:"role" binding:"omitempty,max=50"`
}

// UpdateEmployeeDTO deliberately has no employeeId or email field: both
// are immutable, and any such values in the payload are dropped.
type UpdateEmployeeDTO struct {
	FullName   string `json:"fullName" binding:"omitempty,min=2,max=100"`
	Department string `json:"department" binding:"omitempty,min=2,max=50"`
	Role       string `json:"role" binding:"omitempty,max=50"`
	Status     string `json:"status"`
}

type EmployeeDTO struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toEmployeeDTO(e model.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func (ep *EmployeeEndpoint) Add(c *gin.Context) {
	var dto AddEmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var emp *model.Employee
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		emp, err = directory.Add(db, directory.AddInput{
			EmployeeID: dto.EmployeeID,
			FullName:   dto.FullName,
			Email:      dto.Email,
			Department: dto.Department,
			Role:       dto.Role,
		})
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated,
		common.NewSuccessResponse("Employee added successfully", toEmployeeDTO(*emp)))
}

func (ep *EmployeeEndpoint) List(c *gin.Context) {
	var employees []model.Employee
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		employees, err = directory.List(db)
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(
		fmt.Sprintf("Retrieved %d employees", len(employees)),
		utils.Map(employees, toEmployeeDTO)))
}

func (ep *EmployeeEndpoint) Get(c *gin.Context) {
	id := c.Param("id")

	var emp *model.Employee
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		emp, err = directory.Get(db, id)
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK,
		common.NewSuccessResponse("Employee retrieved successfully", toEmployeeDTO(*emp)))
}

func (ep *EmployeeEndpoint) Update(c *gin.Context) {
	id := c.Param("id")

	var dto UpdateEmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var emp *model.Employee
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		emp, err = directory.Update(db, id, directory.UpdateInput{
			FullName:   dto.FullName,
			Department: dto.Department,
			Role:       dto.Role,
			Status:     dto.Status,
		})
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK,
		common.NewSuccessResponse("Employee updated successfully", toEmployeeDTO(*emp)))
}

func (ep *EmployeeEndpoint) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		return directory.Delete(db, id)
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(
		fmt.Sprintf("Employee %s deleted successfully", id), nil))
}
