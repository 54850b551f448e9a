package payroll

import (
	"testing"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func present(date string, overtime float64) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		EmployeeID:    "emp-1",
		Date:          date,
		Status:        attendance.StatusPresent,
		HoursWorked:   attendance.HoursFor(attendance.StatusPresent),
		OvertimeHours: overtime,
	}
}

func marked(date string, status attendance.Status) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		EmployeeID:  "emp-1",
		Date:        date,
		Status:      status,
		HoursWorked: attendance.HoursFor(status),
	}
}

func TestEarningsCalculator_Compute_OfficeStaffAlwaysZero(t *testing.T) {
	// 2025-03-02 is a Sunday and a holiday, with overtime.
	calc := NewEarningsCalculator(DefaultRates(), map[string]bool{"2025-03-02": true})
	records := []attendance.AttendanceRecord{
		present("2025-03-02", 4),
		present("2025-03-03", 2),
	}

	got := calc.Compute(records, employee.TeamOfficeStaff)

	assert.True(t, got.OvertimePay.IsZero())
	assert.True(t, got.HolidayPay.IsZero())
	assert.True(t, got.WeekOffPay.IsZero())
	assert.Zero(t, got.TotalOvertimeHours)
}

func TestEarningsCalculator_Compute_HolidayOnSundayStacks(t *testing.T) {
	calc := NewEarningsCalculator(DefaultRates(), map[string]bool{"2025-03-02": true})

	got := calc.Compute([]attendance.AttendanceRecord{present("2025-03-02", 0)}, employee.TeamInternal)

	assert.True(t, dec("50").Equal(got.HolidayPay), got.HolidayPay.String())
	assert.True(t, dec("40").Equal(got.WeekOffPay), got.WeekOffPay.String())
	assert.True(t, dec("90").Equal(got.Total()), got.Total().String())
}

func TestEarningsCalculator_Compute_Overtime(t *testing.T) {
	calc := NewEarningsCalculator(DefaultRates(), nil)
	records := []attendance.AttendanceRecord{
		present("2025-03-03", 2),
		present("2025-03-04", 1.5),
		marked("2025-03-05", attendance.StatusAbsent),
	}

	got := calc.Compute(records, employee.TeamExternal)

	assert.Equal(t, 3.5, got.TotalOvertimeHours)
	assert.True(t, dec("17.5").Equal(got.OvertimePay), got.OvertimePay.String())
	assert.True(t, got.HolidayPay.IsZero())
	assert.True(t, got.WeekOffPay.IsZero())
}

func TestEarningsCalculator_Compute_NonPresentOnHolidayEarnsNothing(t *testing.T) {
	calc := NewEarningsCalculator(DefaultRates(), map[string]bool{"2025-03-02": true})

	got := calc.Compute([]attendance.AttendanceRecord{marked("2025-03-02", attendance.StatusPublicHoliday)}, employee.TeamInternal)

	assert.True(t, got.Total().IsZero())
}

func TestCalculateEmployeePayroll_ProratesAbsentDays(t *testing.T) {
	emp := employee.Employee{
		ID:   "emp-1",
		Team: employee.TeamInternal,
		Salary: employee.Salary{
			Basic:     dec("3000"),
			Housing:   dec("1000"),
			Transport: dec("500"),
		},
	}
	records := []attendance.AttendanceRecord{
		marked("2025-04-01", attendance.StatusAbsent),
		marked("2025-04-02", attendance.StatusAbsent),
		present("2025-04-03", 0),
	}

	line := CalculateEmployeePayroll(PayrollInput{Employee: emp, Records: records}, NewEarningsCalculator(DefaultRates(), nil))

	assert.Equal(t, 2025, line.Year)
	assert.Equal(t, 4, line.Month)
	assert.Equal(t, 2, line.UnpaidDays)
	assert.True(t, dec("4500").Equal(line.Gross), line.Gross.String())
	assert.True(t, dec("300").Equal(line.ProratedDeduction), line.ProratedDeduction.String())
	assert.True(t, dec("4200").Equal(line.Net), line.Net.String())
}

func TestCalculateEmployeePayroll_VariableDeductionsMatchMonth(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Team: employee.TeamInternal, Salary: employee.Salary{Basic: dec("3000")}}
	deductions := []deduction.DeductionRecord{
		{EmployeeID: "emp-1", Date: "2025-04-10", Amount: dec("100")},
		{EmployeeID: "emp-1", Date: "2025-05-01", Amount: dec("999")},
		{EmployeeID: "emp-2", Date: "2025-04-10", Amount: dec("999")},
		{EmployeeID: "emp-1", Date: "2024-04-10", Amount: dec("999")},
	}
	records := []attendance.AttendanceRecord{
		marked("2025-04-01", attendance.StatusUnpaidLeave),
		present("2025-04-06", 2), // Sunday
	}

	line := CalculateEmployeePayroll(PayrollInput{
		Employee:   emp,
		Records:    records,
		Deductions: deductions,
		Year:       2025,
		Month:      time.April,
	}, NewEarningsCalculator(DefaultRates(), nil))

	assert.True(t, dec("100").Equal(line.VariableDeductions), line.VariableDeductions.String())
	assert.True(t, dec("200").Equal(line.TotalDeductions), line.TotalDeductions.String())
	// 2h overtime at 5 plus 8h week-off at 5
	assert.True(t, dec("50").Equal(line.TotalAdditions), line.TotalAdditions.String())
	assert.True(t, dec("2850").Equal(line.Net), line.Net.String())
}

func TestCalculateEmployeePayroll_IgnoresRecordsOutsidePeriod(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Salary: employee.Salary{Basic: dec("3000")}}
	records := []attendance.AttendanceRecord{
		marked("2025-03-31", attendance.StatusAbsent),
		marked("2025-04-01", attendance.StatusAbsent),
	}

	line := CalculateEmployeePayroll(PayrollInput{Employee: emp, Records: records, Year: 2025, Month: time.April}, NewEarningsCalculator(DefaultRates(), nil))

	assert.Equal(t, 1, line.UnpaidDays)
}

func TestCalculateEmployeePayroll_MissingSalaryIsZero(t *testing.T) {
	line := CalculateEmployeePayroll(PayrollInput{
		Employee: employee.Employee{ID: "emp-1", Team: employee.TeamOfficeStaff},
		Records:  []attendance.AttendanceRecord{marked("2025-04-01", attendance.StatusAbsent)},
	}, NewEarningsCalculator(DefaultRates(), nil))

	assert.True(t, line.Gross.IsZero())
	assert.True(t, line.ProratedDeduction.IsZero())
	assert.True(t, line.Net.IsZero())
}

func TestSumPayroll(t *testing.T) {
	lines := []PayrollLine{
		{Basic: dec("3000"), Gross: dec("4500"), TotalDeductions: dec("300"), TotalAdditions: dec("10"), Net: dec("4210")},
		{Basic: dec("1000"), Gross: dec("1000"), TotalDeductions: dec("0"), TotalAdditions: dec("40"), Net: dec("1040")},
	}

	got := SumPayroll(lines)

	assert.Equal(t, 2, got.Employees)
	assert.True(t, dec("4000").Equal(got.Basic))
	assert.True(t, dec("5500").Equal(got.Gross))
	assert.True(t, dec("300").Equal(got.Deductions))
	assert.True(t, dec("50").Equal(got.Additions))
	assert.True(t, dec("5250").Equal(got.Net))
}

func TestSumPayroll_Empty(t *testing.T) {
	got := SumPayroll(nil)
	assert.Equal(t, 0, got.Employees)
	assert.True(t, got.Net.IsZero())
}
