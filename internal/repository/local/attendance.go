package local

import (
	"context"
	"sort"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type attendanceRepository struct {
	items *kvstore.Collection[attendance.AttendanceRecord]
}

func NewAttendanceRepository(store kvstore.Store) attendance.AttendanceRepository {
	return &attendanceRepository{items: newCollection[attendance.AttendanceRecord](store, collectionAttendance)}
}

func (r *attendanceRepository) Get(ctx context.Context, employeeID, date string) (*attendance.AttendanceRecord, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(items, func(rec attendance.AttendanceRecord) bool { return rec.SameKey(employeeID, date) })
	if i < 0 {
		return nil, nil
	}
	rec := items[i]
	return &rec, nil
}

func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.AttendanceRecord) error {
	return r.items.Update(ctx, func(items []attendance.AttendanceRecord) ([]attendance.AttendanceRecord, error) {
		i := indexOf(items, func(rec attendance.AttendanceRecord) bool { return rec.SameKey(record.EmployeeID, record.Date) })
		if i >= 0 {
			items[i] = record
			return items, nil
		}
		return append(items, record), nil
	})
}

func (r *attendanceRepository) Delete(ctx context.Context, employeeID, date string) (bool, error) {
	removed := false
	err := r.items.Update(ctx, func(items []attendance.AttendanceRecord) ([]attendance.AttendanceRecord, error) {
		i := indexOf(items, func(rec attendance.AttendanceRecord) bool { return rec.SameKey(employeeID, date) })
		if i < 0 {
			return items, nil
		}
		removed = true
		return append(items[:i], items[i+1:]...), nil
	})
	return removed, err
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceRecord, error) {
	return r.List(ctx, attendance.AttendanceFilter{StartDate: date, EndDate: date})
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]attendance.AttendanceRecord, 0)
	for _, rec := range items {
		if filter.Matches(rec) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}
