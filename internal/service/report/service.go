package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/report"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewReportService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// load fetches all employees and the records in [start, end] concurrently.
func (s *ReportServiceImpl) load(ctx context.Context, filter attendance.AttendanceFilter) ([]employee.Employee, []attendance.AttendanceRecord, error) {
	var (
		employees []employee.Employee
		records   []attendance.AttendanceRecord
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
		records, err = s.attendanceRepo.List(gCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return employees, records, nil
}

// GenerateMonthlyAttendanceReport generates the monthly attendance report
func (s *ReportServiceImpl) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	start, end := dateutil.MonthBounds(req.Year, time.Month(req.Month))
	employees, records, err := s.load(ctx, attendance.AttendanceFilter{StartDate: start, EndDate: end})
	if err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	byEmployee := make(map[string][]attendance.AttendanceRecord)
	for _, r := range records {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	totals := make(map[string]int, len(attendance.Statuses))
	for _, st := range attendance.Statuses {
		totals[string(st)] = 0
	}

	rows := make([]report.AttendanceSummaryRow, 0, len(employees))
	for _, e := range employees {
		own := byEmployee[e.ID]
		if !e.Active && len(own) == 0 {
			continue
		}

		row := report.AttendanceSummaryRow{
			EmployeeID:   e.ID,
			EmployeeCode: e.Code,
			EmployeeName: e.Name,
			Designation:  e.Designation,
			Counts:       make(map[string]int, len(attendance.Statuses)),
		}
		for _, st := range attendance.Statuses {
			row.Counts[string(st)] = 0
		}
		for _, r := range own {
			row.Counts[string(r.Status)]++
			totals[string(r.Status)]++
			row.MarkedDays++
			row.TotalHours += r.HoursWorked
			row.OvertimeHours += r.OvertimeHours
		}
		rows = append(rows, row)
	}

	return report.MonthlyAttendanceReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: start,
		PeriodEnd:   end,
		GeneratedAt: s.now().Format(time.RFC3339),
		Employees:   rows,
		Totals:      totals,
	}, nil
}

// ExportAttendanceCSV writes one line per record, ordered by date then employee code.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, req report.AttendanceExportRequest, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	employees, records, err := s.load(ctx, attendance.AttendanceFilter{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		return err
	}

	byID := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	rows := make([]*report.AttendanceExportRow, 0, len(records))
	for _, r := range records {
		e := byID[r.EmployeeID]
		row := &report.AttendanceExportRow{
			Date:         r.Date,
			EmployeeCode: e.Code,
			EmployeeName: e.Name,
			Designation:  e.Designation,
			Company:      e.Company,
			Status:       string(r.Status),
			Hours:        r.HoursWorked,
			Overtime:     r.OvertimeHours,
			UpdatedBy:    r.UpdatedBy,
			Notes:        r.Note,
		}
		if r.Attachment != nil {
			row.Attachment = r.Attachment.Name
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].EmployeeCode < rows[j].EmployeeCode
	})

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write attendance csv: %w", err)
	}
	return nil
}

// GenerateLeaveBalanceReport lists active employees with the leave days
// recorded on attendance during the year.
func (s *ReportServiceImpl) GenerateLeaveBalanceReport(ctx context.Context, req report.LeaveBalanceReportRequest) (report.LeaveBalanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.LeaveBalanceReport{}, err
	}

	year := strconv.Itoa(req.Year)
	employees, records, err := s.load(ctx, attendance.AttendanceFilter{StartDate: year + "-01-01", EndDate: year + "-12-31"})
	if err != nil {
		return report.LeaveBalanceReport{}, err
	}

	rows := make([]report.LeaveBalanceRow, 0, len(employees))
	index := make(map[string]int, len(employees))
	for _, e := range employees {
		if !e.Active {
			continue
		}
		index[e.ID] = len(rows)
		rows = append(rows, report.LeaveBalanceRow{
			EmployeeID:   e.ID,
			EmployeeCode: e.Code,
			EmployeeName: e.Name,
			LeaveBalance: e.LeaveBalance,
		})
	}

	for _, r := range records {
		i, ok := index[r.EmployeeID]
		if !ok {
			continue
		}
		switch r.Status {
		case attendance.StatusAnnualLeave:
			rows[i].AnnualTaken++
		case attendance.StatusSickLeave:
			rows[i].SickTaken++
		case attendance.StatusUnpaidLeave:
			rows[i].UnpaidTaken++
		case attendance.StatusEmergencyLeave:
			rows[i].EmergencyTaken++
		}
	}

	return report.LeaveBalanceReport{
		Year:        req.Year,
		GeneratedAt: s.now().Format(time.RFC3339),
		Employees:   rows,
	}, nil
}

// GenerateDocumentExpiryReport includes documents already expired as well as
// those expiring within the window.
func (s *ReportServiceImpl) GenerateDocumentExpiryReport(ctx context.Context, req report.DocumentExpiryRequest) ([]report.DocumentExpiryRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	asOf := req.AsOf
	if asOf == "" {
		asOf = dateutil.FromTime(s.now())
	}
	asOfTime, err := dateutil.Parse(asOf)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var rows []report.DocumentExpiryRow
	for _, e := range employees {
		if !e.Active {
			continue
		}
		docs := []struct {
			kind   report.DocumentKind
			number string
			expiry string
		}{
			{report.DocumentEmiratesID, e.Documents.EmiratesID, e.Documents.EmiratesIDExpiry},
			{report.DocumentPassport, e.Documents.Passport, e.Documents.PassportExpiry},
			{report.DocumentLabourCard, e.Documents.LabourCard, e.Documents.LabourCardExpiry},
		}
		for _, d := range docs {
			expiry, err := dateutil.Parse(d.expiry)
			if err != nil {
				continue
			}
			remaining := int(expiry.Sub(asOfTime).Hours() / 24)
			if remaining > req.WithinDays {
				continue
			}
			rows = append(rows, report.DocumentExpiryRow{
				EmployeeID:    e.ID,
				EmployeeCode:  e.Code,
				EmployeeName:  e.Name,
				Document:      d.kind,
				Number:        d.number,
				ExpiryDate:    d.expiry,
				DaysRemaining: remaining,
				Expired:       remaining < 0,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ExpiryDate != rows[j].ExpiryDate {
			return rows[i].ExpiryDate < rows[j].ExpiryDate
		}
		return rows[i].EmployeeCode < rows[j].EmployeeCode
	})
	return rows, nil
}
