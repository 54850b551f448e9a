package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attachment"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/report"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	svc        report.ReportService
	employees  employee.EmployeeRepository
	attendance attendance.AttendanceRepository
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	records := local.NewAttendanceRepository(store)
	svc := NewReportService(employees, records)
	svc.(*ReportServiceImpl).now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return reportFixture{svc: svc, employees: employees, attendance: records}
}

func (f reportFixture) addEmployee(t *testing.T, e employee.Employee, active bool) {
	t.Helper()
	e.Name = "Employee " + e.Code
	e.SetActive(active)
	_, err := f.employees.Create(context.Background(), e)
	require.NoError(t, err)
}

func (f reportFixture) mark(t *testing.T, rec attendance.AttendanceRecord) {
	t.Helper()
	rec.HoursWorked = attendance.HoursFor(rec.Status)
	require.NoError(t, f.attendance.Upsert(context.Background(), rec))
}

func TestReportService_MonthlyAttendance(t *testing.T) {
	f := newReportFixture(t)
	f.addEmployee(t, employee.Employee{ID: "e1", Code: "E001", LeaveBalance: 30}, true)
	f.addEmployee(t, employee.Employee{ID: "e2", Code: "E002"}, false)
	f.addEmployee(t, employee.Employee{ID: "e3", Code: "E003"}, false)
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-05-01", Status: attendance.StatusPresent, OvertimeHours: 2})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-05-02", Status: attendance.StatusAbsent})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e2", Date: "2025-05-02", Status: attendance.StatusPresent})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-06-01", Status: attendance.StatusPresent})

	rep, err := f.svc.GenerateMonthlyAttendanceReport(context.Background(), report.MonthlyAttendanceReportRequest{Year: 2025, Month: 5})

	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", rep.PeriodStart)
	assert.Equal(t, "2025-05-31", rep.PeriodEnd)
	require.Len(t, rep.Employees, 2, "inactive employees without records are left out")
	assert.Equal(t, "E001", rep.Employees[0].EmployeeCode)
	assert.Equal(t, 1, rep.Employees[0].Counts["P"])
	assert.Equal(t, 1, rep.Employees[0].Counts["A"])
	assert.Equal(t, 0, rep.Employees[0].Counts["SL"])
	assert.Equal(t, 2, rep.Employees[0].MarkedDays)
	assert.Equal(t, 8.0, rep.Employees[0].TotalHours)
	assert.Equal(t, 2.0, rep.Employees[0].OvertimeHours)
	assert.Equal(t, 2, rep.Totals["P"])
	assert.Equal(t, 1, rep.Totals["A"])
}

func TestReportService_MonthlyAttendance_Validation(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.svc.GenerateMonthlyAttendanceReport(context.Background(), report.MonthlyAttendanceReportRequest{Year: 2025, Month: 13})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_ExportAttendanceCSV(t *testing.T) {
	f := newReportFixture(t)
	f.addEmployee(t, employee.Employee{ID: "e1", Code: "E002", Company: "Acme"}, true)
	f.addEmployee(t, employee.Employee{ID: "e2", Code: "E001", Company: "Acme"}, true)
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-05-01", Status: attendance.StatusSickLeave,
		Attachment: &attachment.Attachment{Name: "note.pdf", Data: "x"}, Note: "flu", UpdatedBy: "hr"})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e2", Date: "2025-05-01", Status: attendance.StatusPresent})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e2", Date: "2025-04-30", Status: attendance.StatusPresent})

	var buf bytes.Buffer
	err := f.svc.ExportAttendanceCSV(context.Background(), report.AttendanceExportRequest{StartDate: "2025-05-01", EndDate: "2025-05-31"}, &buf)
	require.NoError(t, err)

	lines, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"Date", "Employee Code", "Employee Name", "Designation", "Company", "Status", "Hours", "Overtime", "Attachment", "Updated By", "Notes"}, lines[0])
	assert.Equal(t, "E001", lines[1][1])
	assert.Equal(t, "E002", lines[2][1])
	assert.Equal(t, "SL", lines[2][5])
	assert.Equal(t, "note.pdf", lines[2][8])
	assert.Equal(t, "hr", lines[2][9])
	assert.Equal(t, "flu", lines[2][10])
}

func TestReportService_ExportAttendanceCSV_InvalidRange(t *testing.T) {
	f := newReportFixture(t)
	var buf bytes.Buffer

	err := f.svc.ExportAttendanceCSV(context.Background(), report.AttendanceExportRequest{StartDate: "2025-05-31", EndDate: "2025-05-01"}, &buf)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")
	assert.Zero(t, buf.Len())
}

func TestReportService_LeaveBalance(t *testing.T) {
	f := newReportFixture(t)
	f.addEmployee(t, employee.Employee{ID: "e1", Code: "E001", LeaveBalance: 27}, true)
	f.addEmployee(t, employee.Employee{ID: "e2", Code: "E002", LeaveBalance: 30}, false)
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-02-01", Status: attendance.StatusAnnualLeave})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-02-02", Status: attendance.StatusAnnualLeave})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2025-03-01", Status: attendance.StatusSickLeave})
	f.mark(t, attendance.AttendanceRecord{EmployeeID: "e1", Date: "2024-12-31", Status: attendance.StatusUnpaidLeave})

	rep, err := f.svc.GenerateLeaveBalanceReport(context.Background(), report.LeaveBalanceReportRequest{Year: 2025})

	require.NoError(t, err)
	require.Len(t, rep.Employees, 1)
	row := rep.Employees[0]
	assert.Equal(t, 27, row.LeaveBalance)
	assert.Equal(t, 2, row.AnnualTaken)
	assert.Equal(t, 1, row.SickTaken)
	assert.Equal(t, 0, row.UnpaidTaken)
}

func TestReportService_DocumentExpiry(t *testing.T) {
	f := newReportFixture(t)
	f.addEmployee(t, employee.Employee{ID: "e1", Code: "E001", Documents: employee.Documents{
		EmiratesID: "784-1", EmiratesIDExpiry: "2025-06-20",
		Passport: "P1", PassportExpiry: "2027-01-01",
		LabourCard: "L1", LabourCardExpiry: "2025-05-30",
	}}, true)
	f.addEmployee(t, employee.Employee{ID: "e2", Code: "E002", Documents: employee.Documents{
		Passport: "P2", PassportExpiry: "2025-06-02",
	}}, false)

	rows, err := f.svc.GenerateDocumentExpiryReport(context.Background(), report.DocumentExpiryRequest{WithinDays: 30})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, report.DocumentLabourCard, rows[0].Document)
	assert.True(t, rows[0].Expired)
	assert.Equal(t, -2, rows[0].DaysRemaining)
	assert.Equal(t, report.DocumentEmiratesID, rows[1].Document)
	assert.Equal(t, 19, rows[1].DaysRemaining)
	assert.False(t, rows[1].Expired)
}
