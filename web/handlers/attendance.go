package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/ledger"
	"hrmslite.com/hrmslite/web/common"
)

type AttendanceEndpoint struct {
	store *core.Store
}

func RegisterAttendance(r *gin.RouterGroup, store *core.Store) {
	ep := &AttendanceEndpoint{store: store}
	r.POST("/attendance", ep.Mark)
	r.GET("/attendance", ep.ListAll)
	r.GET("/attendance/employee/:id", ep.ListForEmployee)
	r.GET("/attendance/date/:date", ep.ListByDate)
	r.DELETE("/attendance/cleanup", ep.Cleanup)
}

type MarkAttendanceDTO struct {
	AttendanceDate string  `json:"attendanceDate" binding:"required"`
	IsPresent      *bool   `json:"isPresent"`
	CheckInTime    *string `json:"checkInTime"`
	CheckOutTime   *string `json:"checkOutTime"`
	Notes          *string `json:"notes" binding:"omitempty,max=500"`
}

func (ep *AttendanceEndpoint) Mark(c *gin.Context) {
	employeeID := c.Query("employeeId")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest,
			common.NewErrorResponse("Query parameter 'employeeId' is required"))
		return
	}

	var dto MarkAttendanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var rec *ledger.Record
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		rec, err = ledger.Mark(db, employeeID, ledger.MarkInput{
			AttendanceDate: dto.AttendanceDate,
			IsPresent:      dto.IsPresent,
			CheckInTime:    dto.CheckInTime,
			CheckOutTime:   dto.CheckOutTime,
			Notes:          dto.Notes,
		})
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated,
		common.NewSuccessResponse("Attendance marked successfully for today", rec))
}

func (ep *AttendanceEndpoint) ListAll(c *gin.Context) {
	var records []ledger.Record
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		records, err = ledger.ListAll(db)
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(
		fmt.Sprintf("Retrieved %d attendance records", len(records)), records))
}

func (ep *AttendanceEndpoint) ListForEmployee(c *gin.Context) {
	id := c.Param("id")

	var records []ledger.Record
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		records, err = ledger.ListForEmployee(db, id)
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(
		fmt.Sprintf("Retrieved %d attendance records", len(records)), records))
}

func (ep *AttendanceEndpoint) ListByDate(c *gin.Context) {
	date := c.Param("date")

	var records []ledger.Record
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		records, err = ledger.ListByDate(db, date)
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(
		fmt.Sprintf("Retrieved %d attendance records for %s", len(records), date), records))
}

func (ep *AttendanceEndpoint) Cleanup(c *gin.Context) {
	var deleted int64
	if err := ep.store.Exec(c.Request.Context(), func(db *gorm.DB) error {
		var err error
		deleted, err = ledger.SweepOrphans(db)
		return err
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(
		fmt.Sprintf("Cleaned up %d orphaned attendance records", deleted),
		gin.H{"deletedRecords": deleted}))
}
