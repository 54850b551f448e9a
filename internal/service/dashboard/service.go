package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/dashboard"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/leave"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/report"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"golang.org/x/sync/errgroup"
)

const expiryWindowDays = 30

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	reportService  report.ReportService
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	reportService report.ReportService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		reportService:  reportService,
		now:            time.Now,
	}
}

// GetDashboard loads its four sources in parallel.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.DashboardRequest) (dashboard.DashboardResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.DashboardResponse{}, err
	}
	date := req.Date
	if date == "" {
		date = dateutil.FromTime(s.now())
	}
	year, month, err := dateutil.YearMonth(date)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.AttendanceRecord
		pending   []leave.LeaveRequest
		expiring  []report.DocumentExpiryRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, employee.EmployeeFilter{})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gCtx, date)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		pending, err = s.leaveRepo.List(gCtx, leave.LeaveRequestFilter{Status: string(leave.LeaveRequestStatusPending)})
		if err != nil {
			return fmt.Errorf("failed to list leave requests: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		expiring, err = s.reportService.GenerateDocumentExpiryReport(gCtx, report.DocumentExpiryRequest{
			WithinDays: expiryWindowDays,
			AsOf:       date,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		Date:                 date,
		EmployeeSummary:      summarizeEmployees(employees, year, month),
		AttendanceStats:      summarizeAttendance(employees, records),
		PendingLeaveRequests: len(pending),
		ExpiringDocuments:    len(expiring),
	}, nil
}

func summarizeEmployees(employees []employee.Employee, year int, month time.Month) dashboard.EmployeeSummaryResponse {
	out := dashboard.EmployeeSummaryResponse{
		Total:       len(employees),
		ByTeam:      map[string]int{},
		ByStaffType: map[string]int{},
	}
	for _, e := range employees {
		if e.JoiningDate != "" && dateutil.InMonth(e.JoiningDate, year, month) {
			out.NewThisMonth++
		}
		if !e.Active {
			out.Inactive++
			continue
		}
		out.Active++
		out.ByTeam[string(e.Team)]++
		out.ByStaffType[string(e.StaffType)]++
	}
	return out
}

func summarizeAttendance(employees []employee.Employee, records []attendance.AttendanceRecord) dashboard.AttendanceStatsResponse {
	out := dashboard.AttendanceStatsResponse{Counts: make(map[string]int, len(attendance.Statuses))}
	for _, st := range attendance.Statuses {
		out.Counts[string(st)] = 0
	}

	marked := make(map[string]bool, len(records))
	for _, r := range records {
		out.Counts[string(r.Status)]++
		marked[r.EmployeeID] = true
	}
	out.Marked = len(records)

	for _, e := range employees {
		if e.Active && !marked[e.ID] {
			out.Unmarked++
		}
	}
	return out
}
