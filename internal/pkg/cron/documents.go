package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/report"
)

// DocumentExpiryJob logs a warning for every employee document that has
// expired or expires within WithinDays.
type DocumentExpiryJob struct {
	reportService report.ReportService
	withinDays    int
}

func NewDocumentExpiryJob(reportService report.ReportService, withinDays int) *DocumentExpiryJob {
	return &DocumentExpiryJob{reportService: reportService, withinDays: withinDays}
}

// Run returns the number of documents reported.
func (j *DocumentExpiryJob) Run(ctx context.Context) (int, error) {
	rows, err := j.reportService.GenerateDocumentExpiryReport(ctx, report.DocumentExpiryRequest{WithinDays: j.withinDays})
	if err != nil {
		return 0, fmt.Errorf("failed to generate document expiry report: %w", err)
	}

	for _, row := range rows {
		slog.Warn("Employee document expiring",
			"employee_code", row.EmployeeCode,
			"employee_name", row.EmployeeName,
			"document", row.Document,
			"expiry_date", row.ExpiryDate,
			"days_remaining", row.DaysRemaining,
			"expired", row.Expired,
		)
	}
	slog.Info("Document expiry check completed", "within_days", j.withinDays, "count", len(rows))
	return len(rows), nil
}

// Fn adapts Run to a scheduler job.
func (j *DocumentExpiryJob) Fn(ctx context.Context) error {
	_, err := j.Run(ctx)
	return err
}
