package holiday

import "context"

type HolidayService interface {
	// Create records the holiday and marks every active employee PublicHoliday on that date
	Create(ctx context.Context, req CreateHolidayRequest) (CreateHolidayResponse, error)

	List(ctx context.Context, year int) ([]PublicHoliday, error)

	// Delete removes the holiday; attendance already stamped is left as is
	Delete(ctx context.Context, id string) error

	// Dates returns the set of holiday dates, used by payroll
	Dates(ctx context.Context) (map[string]bool, error)
}
