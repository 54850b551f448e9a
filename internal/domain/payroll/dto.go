package payroll

import (
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// PayrollFilter selects the month and the active employees to include.
type PayrollFilter struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Team       string `json:"team,omitempty"`
	StaffType  string `json:"staff_type,omitempty"`
	Search     string `json:"search,omitempty"`
}

func (f *PayrollFilter) Validate() error {
	return ValidatePeriod(f.Year, f.Month)
}

// EmployeeFilter converts to the directory filter, restricted to active staff.
func (f PayrollFilter) EmployeeFilter() employee.EmployeeFilter {
	return employee.EmployeeFilter{
		Company:    f.Company,
		Department: f.Department,
		Team:       f.Team,
		StaffType:  f.StaffType,
		Status:     string(employee.EmploymentStatusActive),
		Search:     f.Search,
	}
}

func ValidatePeriod(year, month int) error {
	var errs validator.ValidationErrors

	if year < 1900 || year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be between 1900 and 9999"})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollSummary struct {
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Lines  []PayrollLine `json:"lines"`
	Totals PayrollTotals `json:"totals"`
}

type PayslipRequest struct {
	EmployeeID string
	Year       int
	Month      time.Month
}
