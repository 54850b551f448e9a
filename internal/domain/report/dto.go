package report

import (
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE SUMMARY
// ========================================

type MonthlyAttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 1900 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1900 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyAttendanceReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	Employees []AttendanceSummaryRow `json:"employees"`
	Totals    map[string]int         `json:"totals"`
}

// AttendanceSummaryRow counts one employee's days per status code.
type AttendanceSummaryRow struct {
	EmployeeID    string         `json:"employee_id"`
	EmployeeCode  string         `json:"employee_code"`
	EmployeeName  string         `json:"employee_name"`
	Designation   string         `json:"designation"`
	Counts        map[string]int `json:"counts"`
	MarkedDays    int            `json:"marked_days"`
	TotalHours    float64        `json:"total_hours"`
	OvertimeHours float64        `json:"overtime_hours"`
}

// ========================================
// ATTENDANCE CSV EXPORT
// ========================================

type AttendanceExportRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id,omitempty"`
}

func (r *AttendanceExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !dateutil.Valid(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if !dateutil.Valid(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if len(errs) == 0 && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceExportRow is one line of the exported attendance CSV.
type AttendanceExportRow struct {
	Date         string  `csv:"Date"`
	EmployeeCode string  `csv:"Employee Code"`
	EmployeeName string  `csv:"Employee Name"`
	Designation  string  `csv:"Designation"`
	Company      string  `csv:"Company"`
	Status       string  `csv:"Status"`
	Hours        float64 `csv:"Hours"`
	Overtime     float64 `csv:"Overtime"`
	Attachment   string  `csv:"Attachment"`
	UpdatedBy    string  `csv:"Updated By"`
	Notes        string  `csv:"Notes"`
}

// ========================================
// LEAVE BALANCE
// ========================================

type LeaveBalanceReportRequest struct {
	Year int `json:"year"`
}

func (r *LeaveBalanceReportRequest) Validate() error {
	if r.Year < 1900 || r.Year > 9999 {
		return validator.ValidationErrors{{Field: "year", Message: "year must be between 1900 and 9999"}}
	}
	return nil
}

type LeaveBalanceReport struct {
	Year        int               `json:"year"`
	GeneratedAt string            `json:"generated_at"`
	Employees   []LeaveBalanceRow `json:"employees"`
}

// LeaveBalanceRow shows the remaining balance and the leave days recorded in the year.
type LeaveBalanceRow struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeCode   string `json:"employee_code"`
	EmployeeName   string `json:"employee_name"`
	LeaveBalance   int    `json:"leave_balance"`
	AnnualTaken    int    `json:"annual_taken"`
	SickTaken      int    `json:"sick_taken"`
	UnpaidTaken    int    `json:"unpaid_taken"`
	EmergencyTaken int    `json:"emergency_taken"`
}

// ========================================
// DOCUMENT EXPIRY
// ========================================

type DocumentExpiryRequest struct {
	WithinDays int    `json:"within_days"`
	AsOf       string `json:"as_of,omitempty"`
}

func (r *DocumentExpiryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WithinDays < 0 || r.WithinDays > 3650 {
		errs = append(errs, validator.ValidationError{Field: "within_days", Message: "within_days must be between 0 and 3650"})
	}
	if r.AsOf != "" && !dateutil.Valid(r.AsOf) {
		errs = append(errs, validator.ValidationError{Field: "as_of", Message: "as_of must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentKind string

const (
	DocumentEmiratesID DocumentKind = "Emirates ID"
	DocumentPassport   DocumentKind = "Passport"
	DocumentLabourCard DocumentKind = "Labour Card"
)

// DocumentExpiryRow is a document that has expired or expires inside the window.
type DocumentExpiryRow struct {
	EmployeeID    string       `json:"employee_id"`
	EmployeeCode  string       `json:"employee_code"`
	EmployeeName  string       `json:"employee_name"`
	Document      DocumentKind `json:"document"`
	Number        string       `json:"number"`
	ExpiryDate    string       `json:"expiry_date"`
	DaysRemaining int          `json:"days_remaining"`
	Expired       bool         `json:"expired"`
}
