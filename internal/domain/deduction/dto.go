package deduction

import (
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDeductionRequest struct {
	EmployeeID string          `json:"employee_id" validate:"required"`
	Date       string          `json:"date" validate:"required"`
	Type       DeductionType   `json:"type" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note"`
}

func (r *CreateDeductionRequest) Validate() error {
	errs := validator.Struct(r)

	if r.Date != "" && !dateutil.Valid(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Type != "" && !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of Salary Advance, Loan Amount, Damage, Fine, Penalty, Other"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeductionFilter narrows a listing. Year and Month of 0 are ignored.
type DeductionFilter struct {
	EmployeeID string     `json:"employee_id,omitempty"`
	Year       int        `json:"year,omitempty"`
	Month      time.Month `json:"month,omitempty"`
}

func (f DeductionFilter) Matches(d DeductionRecord) bool {
	if f.EmployeeID != "" && d.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Year == 0 && f.Month == 0 {
		return true
	}
	y, m, err := dateutil.YearMonth(d.Date)
	if err != nil {
		return false
	}
	if f.Year != 0 && y != f.Year {
		return false
	}
	if f.Month != 0 && m != f.Month {
		return false
	}
	return true
}
