package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"
)

// Employee is an identity record. EmployeeID and Email are immutable
// after creation and unique across the directory.
type Employee struct {
	ID         string `gorm:"primaryKey;size:36"`
	EmployeeID string `gorm:"size:20;uniqueIndex"`
	FullName   string `gorm:"size:100"`
	Email      string `gorm:"size:255;uniqueIndex"`
	Department string `gorm:"size:50"`
	Role       string `gorm:"size:50;default:Employee"`
	Status     string `gorm:"size:20;default:Active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
