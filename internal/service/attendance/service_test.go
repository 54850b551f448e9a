package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attachment"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

type attendanceFixture struct {
	svc       *AttendanceServiceImpl
	employees employee.EmployeeRepository
	records   attendance.AttendanceRepository
}

func newAttendanceFixture(t *testing.T) attendanceFixture {
	t.Helper()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)

	svc := NewAttendanceService(store, records, employees).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return attendanceFixture{svc: svc, employees: employees, records: records}
}

func (f attendanceFixture) addEmployee(t *testing.T, id, code string, active bool) {
	t.Helper()
	e := employee.Employee{ID: id, Code: code, Name: "Employee " + code, Team: employee.TeamInternal}
	e.SetActive(active)
	_, err := f.employees.Create(context.Background(), e)
	require.NoError(t, err)
}

func float(v float64) *float64 { return &v }

func str(v string) *string { return &v }

func TestAttendanceService_Mark_CreatesRecord(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)

	rec, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:    "e1",
		Date:          "2025-03-10",
		Status:        "p",
		OvertimeHours: float(2),
		Actor:         "hr",
	})

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, attendance.StandardShiftHours, rec.HoursWorked)
	assert.Equal(t, 2.0, rec.OvertimeHours)
	assert.Equal(t, "hr", rec.UpdatedBy)
	require.NotNil(t, rec.CheckInTime)
	assert.True(t, fixedNow.Equal(*rec.CheckInTime))
}

func TestAttendanceService_Mark_CheckInSetOnce(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)

	mark := func(status attendance.Status) attendance.AttendanceRecord {
		rec, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-03-10", Status: status})
		require.NoError(t, err)
		return rec
	}

	first := mark(attendance.StatusPresent)
	require.NotNil(t, first.CheckInTime)

	later := fixedNow.Add(time.Hour)
	f.svc.now = func() time.Time { return later }

	absent := mark(attendance.StatusAbsent)
	require.NotNil(t, absent.CheckInTime)
	assert.True(t, fixedNow.Equal(*absent.CheckInTime))

	again := mark(attendance.StatusPresent)
	require.NotNil(t, again.CheckInTime)
	assert.True(t, fixedNow.Equal(*again.CheckInTime))
	assert.True(t, later.Equal(again.UpdatedAt))
}

func TestAttendanceService_Mark_UpsertKeepsSingleRecord(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)

	_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:    "e1",
		Date:          "2025-03-10",
		Status:        attendance.StatusPresent,
		OvertimeHours: float(3),
		Note:          str("late bus"),
		Attachment:    &attachment.Attachment{Name: "slip.pdf", ContentType: "application/pdf", Data: "ZGF0YQ=="},
	})
	require.NoError(t, err)

	rec, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "e1",
		Date:       "2025-03-10",
		Status:     attendance.StatusSickLeave,
	})
	require.NoError(t, err)

	day, err := f.records.ListByDate(ctx, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, day, 1)

	assert.Equal(t, attendance.StatusSickLeave, rec.Status)
	assert.Zero(t, rec.HoursWorked)
	assert.Equal(t, 3.0, rec.OvertimeHours, "overtime is kept when the mark omits it")
	assert.Equal(t, "late bus", rec.Note)
	require.NotNil(t, rec.Attachment)
	assert.Equal(t, "slip.pdf", rec.Attachment.Name)
	assert.Equal(t, "system", rec.UpdatedBy)
}

func TestAttendanceService_Mark_EmptyAttachmentClears(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)

	_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "e1",
		Date:       "2025-03-10",
		Status:     attendance.StatusPresent,
		Attachment: &attachment.Attachment{Name: "slip.pdf", Data: "ZGF0YQ=="},
	})
	require.NoError(t, err)

	rec, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "e1",
		Date:       "2025-03-10",
		Status:     attendance.StatusPresent,
		Attachment: &attachment.Attachment{},
	})
	require.NoError(t, err)
	assert.Nil(t, rec.Attachment)
}

func TestAttendanceService_Mark_UnknownEmployee(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "ghost",
		Date:       "2025-03-10",
		Status:     attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Mark_Validation(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID:    "e1",
		Date:          "10/03/2025",
		Status:        "XX",
		OvertimeHours: float(-1),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "date")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "overtime_hours")
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)

	_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-03-10", Status: attendance.StatusAbsent})
	require.NoError(t, err)

	removed, err := f.svc.Delete(ctx, "e1", "2025-03-10")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.svc.Delete(ctx, "e1", "2025-03-10")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = f.svc.Get(ctx, "e1", "2025-03-10")
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_CopyDay(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)
	f.addEmployee(t, "e2", "E002", true)
	f.addEmployee(t, "e3", "E003", true)

	_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID:    "e1",
		Date:          "2025-03-09",
		Status:        attendance.StatusPresent,
		OvertimeHours: float(1.5),
		Attachment:    &attachment.Attachment{Name: "slip.pdf", Data: "ZGF0YQ=="},
	})
	require.NoError(t, err)
	_, err = f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e2", Date: "2025-03-09", Status: attendance.StatusAbsent})
	require.NoError(t, err)
	// Existing target record for e1 gets overwritten, e3 keeps its own.
	_, err = f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-03-10", Status: attendance.StatusSickLeave, Note: str("old")})
	require.NoError(t, err)
	_, err = f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e3", Date: "2025-03-10", Status: attendance.StatusAnnualLeave})
	require.NoError(t, err)

	copied, err := f.svc.CopyDay(ctx, attendance.CopyDayRequest{SourceDate: "2025-03-09", TargetDate: "2025-03-10", Actor: "hr"})
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	target, err := f.records.ListByDate(ctx, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, target, 3)

	e1, err := f.svc.Get(ctx, "e1", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, e1.Status)
	assert.Equal(t, 1.5, e1.OvertimeHours)
	assert.Equal(t, "Copied from 2025-03-09", e1.Note)
	assert.Nil(t, e1.Attachment)
	assert.Equal(t, "hr", e1.UpdatedBy)

	e3, err := f.svc.Get(ctx, "e3", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAnnualLeave, e3.Status)
}

func TestAttendanceService_CopyDay_EmptySource(t *testing.T) {
	f := newAttendanceFixture(t)

	copied, err := f.svc.CopyDay(context.Background(), attendance.CopyDayRequest{SourceDate: "2025-03-01", TargetDate: "2025-03-02"})

	require.NoError(t, err)
	assert.Zero(t, copied)
}

func TestAttendanceService_CopyDay_SameDateRejected(t *testing.T) {
	f := newAttendanceFixture(t)

	_, err := f.svc.CopyDay(context.Background(), attendance.CopyDayRequest{SourceDate: "2025-03-01", TargetDate: "2025-03-01"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAttendanceService_StampHoliday_ActiveOnly(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)
	f.addEmployee(t, "e2", "E002", false)

	_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-12-02", Status: attendance.StatusAbsent})
	require.NoError(t, err)

	stamped, err := f.svc.StampHoliday(ctx, "2025-12-02", "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, stamped)

	day, err := f.records.ListByDate(ctx, "2025-12-02")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, attendance.StatusPublicHoliday, day[0].Status)
	assert.Equal(t, "admin", day[0].UpdatedBy)
}

func TestAttendanceService_List_FiltersRange(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e1", "E001", true)

	for _, d := range []string{"2025-02-28", "2025-03-01", "2025-03-31", "2025-04-01"} {
		_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: d, Status: attendance.StatusPresent})
		require.NoError(t, err)
	}

	got, err := f.svc.List(ctx, attendance.AttendanceFilter{EmployeeID: "e1", StartDate: "2025-03-01", EndDate: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-01", got[0].Date)
	assert.Equal(t, "2025-03-31", got[1].Date)
}

func TestAttendanceService_Month(t *testing.T) {
	ctx := context.Background()
	f := newAttendanceFixture(t)
	f.addEmployee(t, "e2", "E002", true)
	f.addEmployee(t, "e1", "E001", true)
	f.addEmployee(t, "e3", "E003", false)

	_, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-02-03", Status: attendance.StatusPresent, OvertimeHours: float(2)})
	require.NoError(t, err)
	_, err = f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-02-04", Status: attendance.StatusPresent, OvertimeHours: float(1)})
	require.NoError(t, err)
	_, err = f.svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: "e1", Date: "2025-03-01", Status: attendance.StatusAbsent})
	require.NoError(t, err)

	sheet, err := f.svc.Month(ctx, 2025, time.February)
	require.NoError(t, err)

	assert.Len(t, sheet.Dates, 28)
	require.Len(t, sheet.Rows, 2, "inactive employees without records are left out")
	assert.Equal(t, "E001", sheet.Rows[0].EmployeeCode)
	assert.Equal(t, 3.0, sheet.Rows[0].OvertimeHours)
	assert.Len(t, sheet.Rows[0].Days, 2)
	assert.Empty(t, sheet.Rows[1].Days)

	_, err = f.svc.Month(ctx, 2025, 13)
	assert.Error(t, err)
}
