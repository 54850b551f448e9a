package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeductionType string

const (
	DeductionTypeSalaryAdvance DeductionType = "Salary Advance"
	DeductionTypeLoanAmount    DeductionType = "Loan Amount"
	DeductionTypeDamage        DeductionType = "Damage"
	DeductionTypeFine          DeductionType = "Fine"
	DeductionTypePenalty       DeductionType = "Penalty"
	DeductionTypeOther         DeductionType = "Other"
)

var DeductionTypes = []DeductionType{
	DeductionTypeSalaryAdvance,
	DeductionTypeLoanAmount,
	DeductionTypeDamage,
	DeductionTypeFine,
	DeductionTypePenalty,
	DeductionTypeOther,
}

func (t DeductionType) Valid() bool {
	for _, dt := range DeductionTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// DeductionRecord is a one-off amount taken from the payroll of the month its date falls in.
type DeductionRecord struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Type       DeductionType   `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
