package local

import (
	"context"
	"sort"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/holiday"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type holidayRepository struct {
	items *kvstore.Collection[holiday.PublicHoliday]
}

func NewHolidayRepository(store kvstore.Store) holiday.HolidayRepository {
	return &holidayRepository{items: newCollection[holiday.PublicHoliday](store, collectionPublicHolidays)}
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.PublicHoliday) (holiday.PublicHoliday, error) {
	err := r.items.Update(ctx, func(items []holiday.PublicHoliday) ([]holiday.PublicHoliday, error) {
		if indexOf(items, func(existing holiday.PublicHoliday) bool { return existing.Date == h.Date }) >= 0 {
			return nil, holiday.ErrHolidayDateExists
		}
		return append(items, h), nil
	})
	if err != nil {
		return holiday.PublicHoliday{}, err
	}
	return h, nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.PublicHoliday, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return holiday.PublicHoliday{}, err
	}
	i := indexOf(items, func(h holiday.PublicHoliday) bool { return h.ID == id })
	if i < 0 {
		return holiday.PublicHoliday{}, holiday.ErrHolidayNotFound
	}
	return items[i], nil
}

func (r *holidayRepository) List(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]holiday.PublicHoliday, 0, len(items))
	for _, h := range items {
		if year != 0 {
			if y, _, err := dateutil.YearMonth(h.Date); err != nil || y != year {
				continue
			}
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	return r.items.Update(ctx, func(items []holiday.PublicHoliday) ([]holiday.PublicHoliday, error) {
		i := indexOf(items, func(h holiday.PublicHoliday) bool { return h.ID == id })
		if i < 0 {
			return nil, holiday.ErrHolidayNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}
