package leave

import (
	"fmt"
	"strings"

	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// MaxRequestDays caps a single request at one leap year.
const MaxRequestDays = 366

type SubmitLeaveRequest struct {
	EmployeeID string    `json:"employee_id" validate:"required"`
	Type       LeaveType `json:"type" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required"`
	EndDate    string    `json:"end_date" validate:"required"`
	Reason     string    `json:"reason" validate:"required"`
}

func (r *SubmitLeaveRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)

	errs := validator.Struct(r)

	if r.Type != "" && !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of SL, AL, UL, EL"})
	}

	startOK := r.StartDate == "" || dateutil.Valid(r.StartDate)
	endOK := r.EndDate == "" || dateutil.Valid(r.EndDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && r.StartDate != "" && r.EndDate != "" && r.EndDate < r.StartDate {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	} else if startOK && endOK && r.StartDate != "" && r.EndDate != "" {
		if days, err := dateutil.DaysInclusive(r.StartDate, r.EndDate); err == nil && days > MaxRequestDays {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: fmt.Sprintf("leave request must not exceed %d days", MaxRequestDays)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetLeaveStatusRequest struct {
	ID     string             `json:"-"`
	Status LeaveRequestStatus `json:"status" validate:"required,oneof=Approved Rejected"`
	Actor  string             `json:"-"`
}

func (r *SetLeaveStatusRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Type       string `json:"type,omitempty"`
}

func (f LeaveRequestFilter) Matches(lr LeaveRequest) bool {
	if f.EmployeeID != "" && lr.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, string(lr.Status)) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, string(lr.Type)) {
		return false
	}
	return true
}
