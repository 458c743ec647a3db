package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one record per employee per calendar day. EmployeeID is
// a business reference, not a database foreign key: a delete that skips
// the cascade leaves the row orphaned, and the sweeper reclaims it.
// The composite unique index is what makes the one-per-day rule hold
// under concurrent marking.
type Attendance struct {
	ID             string `gorm:"primaryKey;size:36"`
	EmployeeID     string `gorm:"size:20;index;uniqueIndex:idx_employee_date"`
	AttendanceDate string `gorm:"size:10;uniqueIndex:idx_employee_date"` // 2006-01-02
	IsPresent      bool
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
	Notes          *string `gorm:"size:500"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Attendance) TableName() string {
	return "attendance"
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
