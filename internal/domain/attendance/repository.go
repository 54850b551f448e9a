package attendance

import "context"

type AttendanceRepository interface {
	// Get returns nil when no record exists for the key
	Get(ctx context.Context, employeeID, date string) (*AttendanceRecord, error)
	Upsert(ctx context.Context, record AttendanceRecord) error
	// Delete reports whether a record was removed
	Delete(ctx context.Context, employeeID, date string) (bool, error)
	ListByDate(ctx context.Context, date string) ([]AttendanceRecord, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceRecord, error)
}
