package directory

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/model"
)

var (
	validate = validator.New()

	employeeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	fullNamePattern   = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
)

func validateAdd(in AddInput) error {
	if l := len(in.EmployeeID); l < 3 || l > 20 {
		return core.InvalidInput("Invalid employeeId: must be 3-20 characters")
	}
	if !employeeIDPattern.MatchString(in.EmployeeID) {
		return core.InvalidInput("Invalid employeeId: must contain only alphanumeric characters")
	}
	if err := validateFullName(in.FullName); err != nil {
		return err
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		return core.InvalidInput("Invalid email: %s", in.Email)
	}
	if err := validateDepartment(in.Department); err != nil {
		return err
	}
	if len(in.Role) > 50 {
		return core.InvalidInput("Invalid role: must be at most 50 characters")
	}
	return nil
}

func validateFullName(name string) error {
	if l := len(name); l < 2 || l > 100 {
		return core.InvalidInput("Invalid fullName: must be 2-100 characters")
	}
	if !fullNamePattern.MatchString(name) {
		return core.InvalidInput("Invalid fullName: can only contain letters, spaces, hyphens, and apostrophes")
	}
	return nil
}

func validateDepartment(department string) error {
	if l := len(department); l < 2 || l > 50 {
		return core.InvalidInput("Invalid department: must be 2-50 characters")
	}
	return nil
}

func validateStatus(status string) error {
	switch status {
	case model.StatusActive, model.StatusInactive, model.StatusOnLeave:
		return nil
	}
	return core.InvalidInput("Invalid status: must be Active, Inactive, or On Leave")
}
