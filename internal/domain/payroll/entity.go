package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rates are the fixed figures used for supplemental earnings and proration.
type Rates struct {
	OvertimeHourlyRate decimal.Decimal
	HolidayBonus       decimal.Decimal
	WeekOffHourlyRate  decimal.Decimal
	WeekOffDay         time.Weekday
	ProrationDivisor   int
}

func DefaultRates() Rates {
	return Rates{
		OvertimeHourlyRate: decimal.NewFromInt(5),
		HolidayBonus:       decimal.NewFromInt(50),
		WeekOffHourlyRate:  decimal.NewFromInt(5),
		WeekOffDay:         time.Sunday,
		ProrationDivisor:   30,
	}
}

type SupplementalEarnings struct {
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	HolidayPay         decimal.Decimal `json:"holiday_pay"`
	WeekOffPay         decimal.Decimal `json:"week_off_pay"`
	TotalOvertimeHours float64         `json:"total_overtime_hours"`
}

// Total is the sum of the three pay buckets.
func (s SupplementalEarnings) Total() decimal.Decimal {
	return decimal.Sum(s.OvertimePay, s.HolidayPay, s.WeekOffPay)
}

// PayrollLine is one employee's computed payroll for a month.
type PayrollLine struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`
	Company      string `json:"company"`
	Team         string `json:"team"`
	BankName     string `json:"bank_name,omitempty"`
	IBAN         string `json:"iban,omitempty"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`

	Basic       decimal.Decimal `json:"basic"`
	Housing     decimal.Decimal `json:"housing"`
	Transport   decimal.Decimal `json:"transport"`
	Other       decimal.Decimal `json:"other"`
	AirTicket   decimal.Decimal `json:"air_ticket"`
	LeaveSalary decimal.Decimal `json:"leave_salary"`
	Gross       decimal.Decimal `json:"gross"`

	UnpaidDays         int             `json:"unpaid_days"`
	ProratedDeduction  decimal.Decimal `json:"prorated_deduction"`
	VariableDeductions decimal.Decimal `json:"variable_deductions"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`

	Earnings       SupplementalEarnings `json:"earnings"`
	TotalAdditions decimal.Decimal      `json:"total_additions"`

	Net decimal.Decimal `json:"net"`
}

// PayrollTotals is the field-wise sum of a set of payroll lines.
type PayrollTotals struct {
	Employees   int             `json:"employees"`
	Basic       decimal.Decimal `json:"basic"`
	Housing     decimal.Decimal `json:"housing"`
	Transport   decimal.Decimal `json:"transport"`
	AirTicket   decimal.Decimal `json:"air_ticket"`
	LeaveSalary decimal.Decimal `json:"leave_salary"`
	Other       decimal.Decimal `json:"other"`
	Gross       decimal.Decimal `json:"gross"`
	Deductions  decimal.Decimal `json:"deductions"`
	Additions   decimal.Decimal `json:"additions"`
	Net         decimal.Decimal `json:"net"`
}
