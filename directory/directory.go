// Package directory owns employee identity records. The attendance
// ledger reads it for existence checks and name resolution but never
// writes through it.
package directory

import (
	"errors"

	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/model"
)

type AddInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
	Role       string
}

// UpdateInput carries the mutable fields. Empty values are left
// unchanged. EmployeeID and email are immutable and have no place here.
type UpdateInput struct {
	FullName   string
	Department string
	Role       string
	Status     string
}

func Add(db *gorm.DB, in AddInput) (*model.Employee, error) {
	if err := validateAdd(in); err != nil {
		return nil, err
	}

	existing, err := FindByEmployeeID(db, in.EmployeeID)
	if err != nil {
		return nil, core.Internal("failed to check existing employee", err)
	}
	if existing != nil {
		return nil, core.Conflict("Employee with ID %s already exists", in.EmployeeID)
	}

	role := in.Role
	if role == "" {
		role = "Employee"
	}

	emp := model.Employee{
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
		Role:       role,
		Status:     model.StatusActive,
	}
	if err := db.Create(&emp).Error; err != nil {
		// unique index on email (and the employee id backstop)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, core.Conflict("Email already exists")
		}
		return nil, core.Internal("failed to create employee", err)
	}
	return &emp, nil
}

// FindByEmployeeID returns (nil, nil) when no employee carries the id.
func FindByEmployeeID(db *gorm.DB, employeeID string) (*model.Employee, error) {
	var emp model.Employee
	result := db.Where("employee_id = ?", employeeID).First(&emp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}

// Get is FindByEmployeeID with absence reported as a NotFound outcome.
func Get(db *gorm.DB, employeeID string) (*model.Employee, error) {
	emp, err := FindByEmployeeID(db, employeeID)
	if err != nil {
		return nil, core.Internal("failed to fetch employee", err)
	}
	if emp == nil {
		return nil, core.NotFound("Employee %s not found", employeeID)
	}
	return emp, nil
}

// List returns every employee, most recently created first.
func List(db *gorm.DB) ([]model.Employee, error) {
	var employees []model.Employee
	if err := db.Order("created_at DESC").Find(&employees).Error; err != nil {
		return nil, core.Internal("failed to fetch employees", err)
	}
	return employees, nil
}

func Update(db *gorm.DB, employeeID string, in UpdateInput) (*model.Employee, error) {
	emp, err := Get(db, employeeID)
	if err != nil {
		return nil, err
	}

	if in.FullName != "" {
		if err := validateFullName(in.FullName); err != nil {
			return nil, err
		}
		emp.FullName = in.FullName
	}
	if in.Department != "" {
		if err := validateDepartment(in.Department); err != nil {
			return nil, err
		}
		emp.Department = in.Department
	}
	if in.Role != "" {
		if len(in.Role) > 50 {
			return nil, core.InvalidInput("Invalid role: must be at most 50 characters")
		}
		emp.Role = in.Role
	}
	if in.Status != "" {
		if err := validateStatus(in.Status); err != nil {
			return nil, err
		}
		emp.Status = in.Status
	}

	if err := db.Save(emp).Error; err != nil {
		return nil, core.Internal("failed to update employee", err)
	}
	return emp, nil
}

// Delete removes the employee and every attendance record referencing
// it. Attendance goes first: a failure between the two steps leaves an
// employee with no attendance, which is safe, while the reverse order
// would leave true orphans. The sweeper reconciles anything a crash
// leaves behind.
func Delete(db *gorm.DB, employeeID string) error {
	emp, err := Get(db, employeeID)
	if err != nil {
		return err
	}

	if err := db.Where("employee_id = ?", emp.EmployeeID).
		Delete(&model.Attendance{}).Error; err != nil {
		return core.Internal("failed to delete attendance records", err)
	}
	if err := db.Delete(emp).Error; err != nil {
		return core.Internal("failed to delete employee", err)
	}
	return nil
}
