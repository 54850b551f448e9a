package holiday

import (
	"context"
	"testing"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/holiday"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	attendanceservice "github.com/shiftsync/shiftsync-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidayService_CreateStampsActiveEmployees(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)
	svc := NewHolidayService(store, local.NewHolidayRepository(store),
		attendanceservice.NewAttendanceService(store, records, employees), idgen.NewSequence("hol"))

	for i, active := range []bool{true, true, false} {
		e := employee.Employee{ID: string(rune('a' + i)), Code: string(rune('A' + i)), Name: "x"}
		e.SetActive(active)
		_, err := employees.Create(ctx, e)
		require.NoError(t, err)
	}

	resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-12-02", Name: "National Day", Actor: "admin"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stamped)
	assert.Equal(t, "hol-1", resp.Holiday.ID)

	day, err := records.ListByDate(ctx, "2025-12-02")
	require.NoError(t, err)
	require.Len(t, day, 2)
	for _, r := range day {
		assert.Equal(t, attendance.StatusPublicHoliday, r.Status)
	}

	dates, err := svc.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"2025-12-02": true}, dates)
}

func TestHolidayService_DuplicateDateLeavesAttendanceAlone(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)
	svc := NewHolidayService(store, local.NewHolidayRepository(store),
		attendanceservice.NewAttendanceService(store, records, employees), idgen.NewSequence("hol"))

	_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-12-02", Name: "National Day"})
	require.NoError(t, err)

	e := employee.Employee{ID: "a", Code: "A", Name: "x"}
	e.SetActive(true)
	_, err = employees.Create(ctx, e)
	require.NoError(t, err)

	_, err = svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-12-02", Name: "Again"})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)

	day, err := records.ListByDate(ctx, "2025-12-02")
	require.NoError(t, err)
	assert.Empty(t, day)
}

func TestHolidayService_DeleteKeepsStampedAttendance(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)
	svc := NewHolidayService(store, local.NewHolidayRepository(store),
		attendanceservice.NewAttendanceService(store, records, employees), idgen.NewSequence("hol"))

	e := employee.Employee{ID: "a", Code: "A", Name: "x"}
	e.SetActive(true)
	_, err := employees.Create(ctx, e)
	require.NoError(t, err)

	resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Date: "2025-12-03", Name: "Commemoration Day"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, resp.Holiday.ID))
	assert.ErrorIs(t, svc.Delete(ctx, resp.Holiday.ID), holiday.ErrHolidayNotFound)

	list, err := svc.List(ctx, 2025)
	require.NoError(t, err)
	assert.Empty(t, list)

	rec, err := records.Get(ctx, "a", "2025-12-03")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusPublicHoliday, rec.Status)
}
