package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h PublicHoliday) (PublicHoliday, error)
	GetByID(ctx context.Context, id string) (PublicHoliday, error)
	// List returns holidays ordered by date; year 0 means every year
	List(ctx context.Context, year int) ([]PublicHoliday, error)
	Delete(ctx context.Context, id string) error
}
