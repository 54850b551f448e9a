package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/holiday"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/payroll"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/payslip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	deductionRepo  deduction.DeductionRepository
	holidayService holiday.HolidayService
	rates          payroll.Rates
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	deductionRepo deduction.DeductionRepository,
	holidayService holiday.HolidayService,
	rates payroll.Rates,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
		holidayService: holidayService,
		rates:          rates,
	}
}

// monthData is everything loaded for a payroll month.
type monthData struct {
	records    []attendance.AttendanceRecord
	deductions []deduction.DeductionRecord
	holidays   map[string]bool
}

// loadMonth fetches attendance, deductions and holidays concurrently.
// An empty employeeID loads the month for everyone.
func (s *PayrollServiceImpl) loadMonth(ctx context.Context, employeeID string, year int, month time.Month) (monthData, error) {
	start, end := dateutil.MonthBounds(year, month)
	var data monthData

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{EmployeeID: employeeID, StartDate: start, EndDate: end})
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		data.records = records
		return nil
	})

	g.Go(func() error {
		deductions, err := s.deductionRepo.List(gCtx, deduction.DeductionFilter{EmployeeID: employeeID, Year: year, Month: month})
		if err != nil {
			return fmt.Errorf("failed to list deductions: %w", err)
		}
		data.deductions = deductions
		return nil
	})

	g.Go(func() error {
		holidays, err := s.holidayService.Dates(gCtx)
		if err != nil {
			return err
		}
		data.holidays = holidays
		return nil
	})

	if err := g.Wait(); err != nil {
		return monthData{}, err
	}
	return data, nil
}

// EmployeePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) EmployeePayroll(ctx context.Context, employeeID string, year int, month time.Month) (payroll.PayrollLine, error) {
	if err := payroll.ValidatePeriod(year, int(month)); err != nil {
		return payroll.PayrollLine{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollLine{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollLine{}, fmt.Errorf("failed to get employee: %w", err)
	}

	data, err := s.loadMonth(ctx, emp.ID, year, month)
	if err != nil {
		return payroll.PayrollLine{}, err
	}

	return payroll.CalculateEmployeePayroll(payroll.PayrollInput{
		Employee:   emp,
		Records:    data.records,
		Deductions: data.deductions,
		Year:       year,
		Month:      month,
	}, payroll.NewEarningsCalculator(s.rates, data.holidays)), nil
}

// Summary implements payroll.PayrollService.
func (s *PayrollServiceImpl) Summary(ctx context.Context, filter payroll.PayrollFilter) (payroll.PayrollSummary, error) {
	if err := filter.Validate(); err != nil {
		return payroll.PayrollSummary{}, err
	}
	month := time.Month(filter.Month)

	var (
		employees []employee.Employee
		data      monthData
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, filter.EmployeeFilter())
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		data, err = s.loadMonth(gCtx, "", filter.Year, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return payroll.PayrollSummary{}, err
	}

	recordsByEmployee := make(map[string][]attendance.AttendanceRecord)
	for _, r := range data.records {
		recordsByEmployee[r.EmployeeID] = append(recordsByEmployee[r.EmployeeID], r)
	}
	deductionsByEmployee := make(map[string][]deduction.DeductionRecord)
	for _, d := range data.deductions {
		deductionsByEmployee[d.EmployeeID] = append(deductionsByEmployee[d.EmployeeID], d)
	}

	calc := payroll.NewEarningsCalculator(s.rates, data.holidays)
	lines := make([]payroll.PayrollLine, 0, len(employees))
	for _, emp := range employees {
		lines = append(lines, payroll.CalculateEmployeePayroll(payroll.PayrollInput{
			Employee:   emp,
			Records:    recordsByEmployee[emp.ID],
			Deductions: deductionsByEmployee[emp.ID],
			Year:       filter.Year,
			Month:      month,
		}, calc))
	}

	return payroll.PayrollSummary{
		Year:   filter.Year,
		Month:  filter.Month,
		Lines:  lines,
		Totals: payroll.SumPayroll(lines),
	}, nil
}

// WritePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) WritePayslip(ctx context.Context, req payroll.PayslipRequest, w io.Writer) error {
	line, err := s.EmployeePayroll(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return err
	}

	doc := payslip.Document{
		Title:  "Payslip - " + line.EmployeeName,
		Period: fmt.Sprintf("%s %d", req.Month, req.Year),
		Details: []payslip.Line{
			{Label: "Employee Code", Value: line.EmployeeCode},
			{Label: "Designation", Value: line.Designation},
			{Label: "Department", Value: line.Department},
			{Label: "Company", Value: line.Company},
			{Label: "Bank", Value: line.BankName},
			{Label: "IBAN", Value: line.IBAN},
		},
		Earnings: []payslip.Line{
			{Label: "Basic", Value: money(line.Basic)},
			{Label: "Housing", Value: money(line.Housing)},
			{Label: "Transport", Value: money(line.Transport)},
			{Label: "Other", Value: money(line.Other)},
			{Label: "Air Ticket", Value: money(line.AirTicket)},
			{Label: "Leave Salary", Value: money(line.LeaveSalary)},
			{Label: "Gross", Value: money(line.Gross)},
		},
		Deductions: []payslip.Line{
			{Label: "Unpaid days (" + strconv.Itoa(line.UnpaidDays) + ")", Value: money(line.ProratedDeduction)},
			{Label: "Other deductions", Value: money(line.VariableDeductions)},
			{Label: "Total deductions", Value: money(line.TotalDeductions)},
		},
		Additions: []payslip.Line{
			{Label: fmt.Sprintf("Overtime (%.1f h)", line.Earnings.TotalOvertimeHours), Value: money(line.Earnings.OvertimePay)},
			{Label: "Public holiday", Value: money(line.Earnings.HolidayPay)},
			{Label: "Week-off", Value: money(line.Earnings.WeekOffPay)},
			{Label: "Total additions", Value: money(line.TotalAdditions)},
		},
		Net: money(line.Net),
	}
	return payslip.Write(w, doc)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
