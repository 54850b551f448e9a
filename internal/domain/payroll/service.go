package payroll

import (
	"context"
	"io"
	"time"
)

type PayrollService interface {
	// EmployeePayroll computes one employee's payroll for a month
	EmployeePayroll(ctx context.Context, employeeID string, year int, month time.Month) (PayrollLine, error)

	// Summary computes payroll for every matching active employee plus totals
	Summary(ctx context.Context, filter PayrollFilter) (PayrollSummary, error)

	// WritePayslip renders the employee's payslip as PDF
	WritePayslip(ctx context.Context, req PayslipRequest, w io.Writer) error
}
