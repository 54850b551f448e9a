package attendance

import (
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attachment"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// MarkAttendanceRequest upserts the record for one employee and day.
// Nil OvertimeHours, Attachment and Note keep whatever the record already holds.
type MarkAttendanceRequest struct {
	EmployeeID    string                 `json:"employee_id" validate:"required"`
	Date          string                 `json:"date" validate:"required"`
	Status        Status                 `json:"status" validate:"required"`
	OvertimeHours *float64               `json:"overtime_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	Attachment    *attachment.Attachment `json:"attachment,omitempty"`
	Note          *string                `json:"note,omitempty"`
	Actor         string                 `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Date != "" && !dateutil.Valid(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Status != "" {
		if st, ok := ParseStatus(string(r.Status)); ok {
			r.Status = st
		} else {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of P, A, W, PH, SL, AL, UL, EL"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CopyDayRequest struct {
	SourceDate string `json:"source_date" validate:"required"`
	TargetDate string `json:"target_date" validate:"required"`
	Actor      string `json:"-"`
}

func (r *CopyDayRequest) Validate() error {
	errs := validator.Struct(r)

	if r.SourceDate != "" && !dateutil.Valid(r.SourceDate) {
		errs = append(errs, validator.ValidationError{Field: "source_date", Message: "source_date must be in YYYY-MM-DD format"})
	}
	if r.TargetDate != "" && !dateutil.Valid(r.TargetDate) {
		errs = append(errs, validator.ValidationError{Field: "target_date", Message: "target_date must be in YYYY-MM-DD format"})
	}
	if r.SourceDate != "" && r.SourceDate == r.TargetDate {
		errs = append(errs, validator.ValidationError{Field: "target_date", Message: "target_date must differ from source_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter narrows a listing. Empty fields are ignored; dates are inclusive.
type AttendanceFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" && !dateutil.Valid(f.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if f.EndDate != "" && !dateutil.Valid(f.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if len(errs) == 0 && f.StartDate != "" && f.EndDate != "" && f.EndDate < f.StartDate {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches reports whether a record falls inside the filter.
func (f AttendanceFilter) Matches(r AttendanceRecord) bool {
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.StartDate != "" && r.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && r.Date > f.EndDate {
		return false
	}
	return true
}

// MonthSheet is the monthly attendance grid: one row per employee, one cell per day.
type MonthSheet struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Dates []string   `json:"dates"`
	Rows  []MonthRow `json:"rows"`
}

type MonthRow struct {
	EmployeeID    string            `json:"employee_id"`
	EmployeeCode  string            `json:"employee_code"`
	EmployeeName  string            `json:"employee_name"`
	Days          map[string]Status `json:"days"`
	OvertimeHours float64           `json:"overtime_hours"`
}
