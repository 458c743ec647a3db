// Package ledger owns daily attendance records. Marking is restricted
// to the current day (UTC) and to one record per employee per day; the
// employee reference is resolved at read time, never repaired.
package ledger

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/directory"
	"hrmslite.com/hrmslite/model"
	"hrmslite.com/hrmslite/utils"
)

// Record is the serialized view of an attendance row with the employee
// reference resolved. Orphaned rows render with the placeholder
// identity instead of failing.
type Record struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employeeId"`
	EmployeeName   string    `json:"employeeName"`
	AttendanceDate string    `json:"attendanceDate"`
	IsPresent      bool      `json:"isPresent"`
	CheckInTime    *string   `json:"checkInTime"`
	CheckOutTime   *string   `json:"checkOutTime"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type MarkInput struct {
	AttendanceDate string
	IsPresent      *bool // nil means present
	CheckInTime    *string
	CheckOutTime   *string
	Notes          *string
}

const dateTimeLayout = "2006-01-02T15:04:05"

// Mark creates today's attendance record for an employee. The date must
// equal the current UTC date and at most one record may exist per
// employee per day; the composite unique index backs the read-check up
// under concurrent requests.
func Mark(db *gorm.DB, employeeID string, in MarkInput) (*Record, error) {
	emp, err := directory.Get(db, employeeID)
	if err != nil {
		return nil, err
	}

	today := utils.TodayUTC()
	dateStr := in.AttendanceDate
	if dateStr == "" {
		dateStr = today
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, core.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	dateStr = date.Format(utils.DateLayout)
	if dateStr != today {
		return nil, core.InvalidInput(
			"Attendance can only be marked for today (%s). You provided %s", today, dateStr)
	}

	var count int64
	if err := db.Model(&model.Attendance{}).
		Where("employee_id = ? AND attendance_date = ?", emp.EmployeeID, today).
		Count(&count).Error; err != nil {
		return nil, core.Internal("failed to check existing attendance", err)
	}
	if count > 0 {
		return nil, core.Conflict("Attendance already marked for %s today", employeeID)
	}

	// Unparseable HH:MM values are dropped rather than rejected. The
	// source system behaved this way and callers rely on it.
	var checkIn, checkOut *time.Time
	if in.CheckInTime != nil && *in.CheckInTime != "" {
		if t, err := utils.ParseClockOnDate(date, *in.CheckInTime); err == nil {
			checkIn = &t
		}
	}
	if in.CheckOutTime != nil && *in.CheckOutTime != "" {
		if t, err := utils.ParseClockOnDate(date, *in.CheckOutTime); err == nil {
			checkOut = &t
		}
	}

	isPresent := true
	if in.IsPresent != nil {
		isPresent = *in.IsPresent
	}

	rec := model.Attendance{
		EmployeeID:     emp.EmployeeID,
		AttendanceDate: today,
		IsPresent:      isPresent,
		CheckInTime:    checkIn,
		CheckOutTime:   checkOut,
		Notes:          in.Notes,
	}
	if err := db.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race on the (employee, date) unique index
			return nil, core.Conflict("Attendance already marked for %s today", employeeID)
		}
		return nil, core.Internal("failed to create attendance record", err)
	}

	out := serialize(rec, emp.EmployeeID, emp.FullName)
	return &out, nil
}

// ListForEmployee returns an employee's records, most recent date
// first. An existing employee with no records yields an empty slice.
func ListForEmployee(db *gorm.DB, employeeID string) ([]Record, error) {
	emp, err := directory.Get(db, employeeID)
	if err != nil {
		return nil, err
	}
	return queryRecords(db.Where("attendance.employee_id = ?", emp.EmployeeID).
		Order("attendance.attendance_date DESC"))
}

// ListAll returns every record in the store, most recent date first.
// Unbounded by design; pagination is out of scope.
func ListAll(db *gorm.DB) ([]Record, error) {
	return queryRecords(db.Order("attendance.attendance_date DESC"))
}

// ListByDate returns records for one calendar date ordered by employee
// identifier. Unlike Mark, any valid date is accepted here.
func ListByDate(db *gorm.DB, dateStr string) ([]Record, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, core.InvalidInput("Invalid date format. Use YYYY-MM-DD")
	}
	return queryRecords(db.Where("attendance.attendance_date = ?", date.Format(utils.DateLayout)).
		Order("attendance.employee_id ASC"))
}

type attendanceRow struct {
	ID             string
	EmployeeID     string
	AttendanceDate string
	IsPresent      bool
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	FullName       *string
}

func queryRecords(db *gorm.DB) ([]Record, error) {
	var rows []attendanceRow
	if err := db.Table("attendance").
		Select("attendance.*, employees.full_name AS full_name").
		Joins("LEFT JOIN employees ON employees.employee_id = attendance.employee_id").
		Scan(&rows).Error; err != nil {
		return nil, core.Internal("failed to fetch attendance records", err)
	}

	return utils.Map(rows, func(r attendanceRow) Record {
		rec := Record{
			ID:             r.ID,
			EmployeeID:     r.EmployeeID,
			EmployeeName:   "",
			AttendanceDate: r.AttendanceDate,
			IsPresent:      r.IsPresent,
			CheckInTime:    formatDateTime(r.CheckInTime),
			CheckOutTime:   formatDateTime(r.CheckOutTime),
			Notes:          r.Notes,
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		}
		if r.FullName == nil {
			// broken reference: render as orphaned, eligible for sweeping
			rec.EmployeeID = "Unknown"
			rec.EmployeeName = "Deleted Employee"
		} else {
			rec.EmployeeName = *r.FullName
		}
		return rec
	}), nil
}

func serialize(rec model.Attendance, employeeID, employeeName string) Record {
	return Record{
		ID:             rec.ID,
		EmployeeID:     employeeID,
		EmployeeName:   employeeName,
		AttendanceDate: rec.AttendanceDate,
		IsPresent:      rec.IsPresent,
		CheckInTime:    formatDateTime(rec.CheckInTime),
		CheckOutTime:   formatDateTime(rec.CheckOutTime),
		Notes:          rec.Notes,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func formatDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return utils.Ptr(t.Format(dateTimeLayout))
}
