package payroll

import (
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// EarningsCalculator computes overtime, holiday-worked and week-off-worked pay.
type EarningsCalculator struct {
	Rates    Rates
	Holidays map[string]bool
}

func NewEarningsCalculator(rates Rates, holidays map[string]bool) EarningsCalculator {
	if holidays == nil {
		holidays = map[string]bool{}
	}
	return EarningsCalculator{Rates: rates, Holidays: holidays}
}

// Compute returns zero for teams that are not overtime eligible. For eligible
// teams a Present day that is both a holiday and a week-off day earns both.
func (c EarningsCalculator) Compute(records []attendance.AttendanceRecord, team employee.Team) SupplementalEarnings {
	out := SupplementalEarnings{
		OvertimePay: decimal.Zero,
		HolidayPay:  decimal.Zero,
		WeekOffPay:  decimal.Zero,
	}
	if !team.OvertimeEligible() {
		return out
	}

	overtimeHours := decimal.Zero
	for _, r := range records {
		overtimeHours = overtimeHours.Add(decimal.NewFromFloat(r.OvertimeHours))
		out.TotalOvertimeHours += r.OvertimeHours

		if r.Status != attendance.StatusPresent {
			continue
		}
		if c.Holidays[r.Date] {
			out.HolidayPay = out.HolidayPay.Add(c.Rates.HolidayBonus)
		}
		if wd, err := dateutil.Weekday(r.Date); err == nil && wd == c.Rates.WeekOffDay {
			hours := r.HoursWorked
			if hours == 0 {
				hours = attendance.StandardShiftHours
			}
			out.WeekOffPay = out.WeekOffPay.Add(decimal.NewFromFloat(hours).Mul(c.Rates.WeekOffHourlyRate))
		}
	}
	out.OvertimePay = overtimeHours.Mul(c.Rates.OvertimeHourlyRate)
	return out
}

// PayrollInput holds everything needed to compute one employee's month.
// A zero Year or Month takes the month of the first record.
type PayrollInput struct {
	Employee   employee.Employee
	Records    []attendance.AttendanceRecord
	Deductions []deduction.DeductionRecord
	Year       int
	Month      time.Month
}

// CalculateEmployeePayroll derives gross, deductions, additions and net pay.
func CalculateEmployeePayroll(in PayrollInput, calc EarningsCalculator) PayrollLine {
	emp := in.Employee
	year, month := in.Year, in.Month
	if (year == 0 || month == 0) && len(in.Records) > 0 {
		if y, m, err := dateutil.YearMonth(in.Records[0].Date); err == nil {
			year, month = y, m
		}
	}
	periodKnown := year != 0 && month != 0

	records := in.Records
	if periodKnown {
		records = make([]attendance.AttendanceRecord, 0, len(in.Records))
		for _, r := range in.Records {
			if dateutil.InMonth(r.Date, year, month) {
				records = append(records, r)
			}
		}
	}

	s := emp.Salary
	line := PayrollLine{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.Code,
		EmployeeName: emp.Name,
		Designation:  emp.Designation,
		Department:   emp.Department,
		Company:      emp.Company,
		Team:         string(emp.Team),
		BankName:     emp.BankName,
		IBAN:         emp.IBAN,
		Year:         year,
		Month:        int(month),
		Basic:        s.Basic,
		Housing:      s.Housing,
		Transport:    s.Transport,
		Other:        s.Other,
		AirTicket:    s.AirTicket,
		LeaveSalary:  s.LeaveSalary,
		Gross:        s.Gross(),
	}

	for _, r := range records {
		if r.Status.Unpaid() {
			line.UnpaidDays++
		}
	}

	divisor := calc.Rates.ProrationDivisor
	if divisor <= 0 {
		divisor = DefaultRates().ProrationDivisor
	}
	line.ProratedDeduction = line.Gross.
		Mul(decimal.NewFromInt(int64(line.UnpaidDays))).
		Div(decimal.NewFromInt(int64(divisor))).
		Round(2)

	line.VariableDeductions = decimal.Zero
	if periodKnown {
		for _, d := range in.Deductions {
			if d.EmployeeID == emp.ID && dateutil.InMonth(d.Date, year, month) {
				line.VariableDeductions = line.VariableDeductions.Add(d.Amount)
			}
		}
	}
	line.TotalDeductions = line.ProratedDeduction.Add(line.VariableDeductions)

	line.Earnings = calc.Compute(records, emp.Team)
	line.TotalAdditions = line.Earnings.Total()

	line.Net = line.Gross.Sub(line.TotalDeductions).Add(line.TotalAdditions)
	return line
}

// SumPayroll adds the lines field by field.
func SumPayroll(lines []PayrollLine) PayrollTotals {
	t := PayrollTotals{
		Employees:   len(lines),
		Basic:       decimal.Zero,
		Housing:     decimal.Zero,
		Transport:   decimal.Zero,
		AirTicket:   decimal.Zero,
		LeaveSalary: decimal.Zero,
		Other:       decimal.Zero,
		Gross:       decimal.Zero,
		Deductions:  decimal.Zero,
		Additions:   decimal.Zero,
		Net:         decimal.Zero,
	}
	for _, l := range lines {
		t.Basic = t.Basic.Add(l.Basic)
		t.Housing = t.Housing.Add(l.Housing)
		t.Transport = t.Transport.Add(l.Transport)
		t.AirTicket = t.AirTicket.Add(l.AirTicket)
		t.LeaveSalary = t.LeaveSalary.Add(l.LeaveSalary)
		t.Other = t.Other.Add(l.Other)
		t.Gross = t.Gross.Add(l.Gross)
		t.Deductions = t.Deductions.Add(l.TotalDeductions)
		t.Additions = t.Additions.Add(l.TotalAdditions)
		t.Net = t.Net.Add(l.Net)
	}
	return t
}
