package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Mark creates or updates the record for an employee and day
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceRecord, error)

	// Delete removes a record; false when there was nothing to remove
	Delete(ctx context.Context, employeeID, date string) (bool, error)

	// CopyDay copies every record of the source day onto the target day
	CopyDay(ctx context.Context, req CopyDayRequest) (int, error)

	// StampHoliday marks every active employee PublicHoliday on date
	StampHoliday(ctx context.Context, date, actor string) (int, error)

	Get(ctx context.Context, employeeID, date string) (AttendanceRecord, error)

	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, error)

	Month(ctx context.Context, year int, month time.Month) (MonthSheet, error)
}
