package report

import (
	"context"
	"io"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// Monthly per-status attendance counts for every employee with records or active status
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)

	// Write attendance records in range as CSV
	ExportAttendanceCSV(ctx context.Context, req AttendanceExportRequest, w io.Writer) error

	// Remaining balance and leave taken per employee
	GenerateLeaveBalanceReport(ctx context.Context, req LeaveBalanceReportRequest) (LeaveBalanceReport, error)

	// Documents of active employees expiring within the window, soonest first
	GenerateDocumentExpiryReport(ctx context.Context, req DocumentExpiryRequest) ([]DocumentExpiryRow, error)
}
