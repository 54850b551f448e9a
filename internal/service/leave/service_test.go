package leave

import (
	"context"
	"testing"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/leave"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	attendanceservice "github.com/shiftsync/shiftsync-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveFixture struct {
	svc        leave.LeaveService
	employees  employee.EmployeeRepository
	attendance attendance.AttendanceRepository
}

func newLeaveFixture(t *testing.T) leaveFixture {
	t.Helper()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)
	requests := local.NewLeaveRequestRepository(store)

	attendanceSvc := attendanceservice.NewAttendanceService(store, records, employees)
	svc := NewLeaveService(store, requests, employees, attendanceSvc, idgen.NewSequence("leave"))
	return leaveFixture{svc: svc, employees: employees, attendance: records}
}

func (f leaveFixture) addEmployee(t *testing.T, id string, balance int) {
	t.Helper()
	e := employee.Employee{ID: id, Code: "C-" + id, Name: "Employee " + id, LeaveBalance: balance}
	e.SetActive(true)
	_, err := f.employees.Create(context.Background(), e)
	require.NoError(t, err)
}

func (f leaveFixture) balance(t *testing.T, id string) int {
	t.Helper()
	e, err := f.employees.GetByID(context.Background(), id)
	require.NoError(t, err)
	return e.LeaveBalance
}

func (f leaveFixture) submit(t *testing.T, employeeID string, typ leave.LeaveType, start, end string) leave.LeaveRequest {
	t.Helper()
	lr, err := f.svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: employeeID,
		Type:       typ,
		StartDate:  start,
		EndDate:    end,
		Reason:     "family",
	})
	require.NoError(t, err)
	return lr
}

func TestLeaveService_Submit(t *testing.T) {
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)

	lr := f.submit(t, "e1", leave.LeaveTypeAnnual, "2025-03-10", "2025-03-12")

	assert.Equal(t, "leave-1", lr.ID)
	assert.Equal(t, leave.LeaveRequestStatusPending, lr.Status)
	assert.Equal(t, 3, lr.TotalDays)
	assert.False(t, lr.AppliedOn.IsZero())
}

func TestLeaveService_Submit_Validation(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		Type:      leave.LeaveTypeAnnual,
		StartDate: "2025-03-12",
		EndDate:   "2025-03-10",
		Reason:    "   ",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "reason")
	assert.Contains(t, fields, "end_date")

	list, err := f.svc.List(context.Background(), leave.LeaveRequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLeaveService_Submit_RangeTooLong(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)

	_, err := f.svc.Submit(ctx, leave.SubmitLeaveRequest{
		EmployeeID: "e1",
		Type:       leave.LeaveTypeUnpaid,
		StartDate:  "2025-01-01",
		EndDate:    "2030-12-31",
		Reason:     "sabbatical",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")

	req := leave.SubmitLeaveRequest{
		Type:      leave.LeaveTypeUnpaid,
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
		Reason:    "sabbatical",
	}
	err = req.Validate()
	require.ErrorAs(t, err, &verrs)
	assert.NotContains(t, verrs.ToMap(), "end_date", "366 days is within the cap")
}

func TestLeaveService_Submit_UnknownEmployee(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "ghost",
		Type:       leave.LeaveTypeSick,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-10",
		Reason:     "flu",
	})

	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
}

func TestLeaveService_SetStatus_ApproveAnnualStampsDaysAndDeducts(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)

	lr := f.submit(t, "e1", leave.LeaveTypeAnnual, "2025-03-10", "2025-03-12")

	decided, err := f.svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: lr.ID, Status: leave.LeaveRequestStatusApproved, Actor: "hr"})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveRequestStatusApproved, decided.Status)
	assert.Equal(t, "hr", decided.DecidedBy)
	require.NotNil(t, decided.DecidedAt)
	assert.Equal(t, 27, f.balance(t, "e1"))

	records, err := f.attendance.List(ctx, attendance.AttendanceFilter{EmployeeID: "e1"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, attendance.StatusAnnualLeave, r.Status)
		assert.Zero(t, r.HoursWorked)
	}
}

func TestLeaveService_SetStatus_ApproveOverwritesExistingAttendance(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)
	require.NoError(t, f.attendance.Upsert(ctx, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-03-10", Status: attendance.StatusPresent, HoursWorked: 8}))

	lr := f.submit(t, "e1", leave.LeaveTypeSick, "2025-03-10", "2025-03-10")
	_, err := f.svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: lr.ID, Status: leave.LeaveRequestStatusApproved})
	require.NoError(t, err)

	rec, err := f.attendance.Get(ctx, "e1", "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusSickLeave, rec.Status)
	assert.Equal(t, 29, f.balance(t, "e1"))
}

func TestLeaveService_SetStatus_BalanceFloorsAtZero(t *testing.T) {
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 2)

	lr := f.submit(t, "e1", leave.LeaveTypeAnnual, "2025-03-01", "2025-03-05")
	_, err := f.svc.SetStatus(context.Background(), leave.SetLeaveStatusRequest{ID: lr.ID, Status: leave.LeaveRequestStatusApproved})
	require.NoError(t, err)

	assert.Equal(t, 0, f.balance(t, "e1"))
}

func TestLeaveService_SetStatus_UnpaidAndEmergencyKeepBalance(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)

	unpaid := f.submit(t, "e1", leave.LeaveTypeUnpaid, "2025-03-01", "2025-03-02")
	emergency := f.submit(t, "e1", leave.LeaveTypeEmergency, "2025-03-03", "2025-03-03")

	for _, id := range []string{unpaid.ID, emergency.ID} {
		_, err := f.svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: id, Status: leave.LeaveRequestStatusApproved})
		require.NoError(t, err)
	}

	assert.Equal(t, 30, f.balance(t, "e1"))
	records, err := f.attendance.List(ctx, attendance.AttendanceFilter{EmployeeID: "e1"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, attendance.StatusUnpaidLeave, records[0].Status)
	assert.Equal(t, attendance.StatusEmergencyLeave, records[2].Status)
}

func TestLeaveService_SetStatus_RejectHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)
	require.NoError(t, f.attendance.Upsert(ctx, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-03-10", Status: attendance.StatusPresent, HoursWorked: 8}))

	lr := f.submit(t, "e1", leave.LeaveTypeAnnual, "2025-03-10", "2025-03-12")
	decided, err := f.svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: lr.ID, Status: leave.LeaveRequestStatusRejected})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveRequestStatusRejected, decided.Status)
	assert.Equal(t, 30, f.balance(t, "e1"))
	records, err := f.attendance.List(ctx, attendance.AttendanceFilter{EmployeeID: "e1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}

func TestLeaveService_SetStatus_TerminalStatesAreFinal(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)

	lr := f.submit(t, "e1", leave.LeaveTypeAnnual, "2025-03-10", "2025-03-12")
	_, err := f.svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: lr.ID, Status: leave.LeaveRequestStatusApproved})
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: lr.ID, Status: leave.LeaveRequestStatusApproved})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Equal(t, 27, f.balance(t, "e1"), "a second approval must not deduct again")

	assert.ErrorIs(t, f.svc.Delete(ctx, lr.ID), leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_SetStatus_RollsBackWhenEmployeeIsGone(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)
	requests := local.NewLeaveRequestRepository(store)
	svc := NewLeaveService(store, requests, employees, attendanceservice.NewAttendanceService(store, records, employees), idgen.NewSequence("leave"))

	_, err := requests.Create(ctx, leave.LeaveRequest{
		ID: "orphan", EmployeeID: "ghost", Type: leave.LeaveTypeAnnual,
		StartDate: "2025-03-10", EndDate: "2025-03-11", Status: leave.LeaveRequestStatusPending,
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(ctx, leave.SetLeaveStatusRequest{ID: "orphan", Status: leave.LeaveRequestStatusApproved})
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)

	lr, err := svc.Get(ctx, "orphan")
	require.NoError(t, err)
	assert.True(t, lr.IsPending())
}

func TestLeaveService_SetStatus_InvalidStatus(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.svc.SetStatus(context.Background(), leave.SetLeaveStatusRequest{ID: "x", Status: leave.LeaveRequestStatusPending})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestLeaveService_DeletePending(t *testing.T) {
	ctx := context.Background()
	f := newLeaveFixture(t)
	f.addEmployee(t, "e1", 30)
	lr := f.submit(t, "e1", leave.LeaveTypeSick, "2025-03-10", "2025-03-10")

	require.NoError(t, f.svc.Delete(ctx, lr.ID))

	_, err := f.svc.Get(ctx, lr.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
