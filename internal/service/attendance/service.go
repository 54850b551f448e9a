package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const systemActor = "system"

type AttendanceServiceImpl struct {
	tx             database.Transactor
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// applyMark merges a mark into the existing record, or starts a new one.
// Status and hours always follow the mark; overtime, attachment and note
// only change when the mark carries them.
func applyMark(existing *attendance.AttendanceRecord, req attendance.MarkAttendanceRequest, now time.Time) attendance.AttendanceRecord {
	rec := attendance.AttendanceRecord{EmployeeID: req.EmployeeID, Date: req.Date}
	if existing != nil {
		rec = *existing
	}

	rec.Status = req.Status
	rec.HoursWorked = attendance.HoursFor(req.Status)
	if req.OvertimeHours != nil {
		rec.OvertimeHours = *req.OvertimeHours
	}
	if req.Attachment != nil {
		if req.Attachment.Empty() {
			rec.Attachment = nil
		} else {
			a := *req.Attachment
			rec.Attachment = &a
		}
	}
	if req.Note != nil {
		rec.Note = *req.Note
	}
	if rec.Status == attendance.StatusPresent && rec.CheckInTime == nil {
		t := now
		rec.CheckInTime = &t
	}

	rec.UpdatedBy = req.Actor
	if rec.UpdatedBy == "" {
		rec.UpdatedBy = systemActor
	}
	rec.UpdatedAt = now
	return rec
}

func (s *AttendanceServiceImpl) ensureEmployee(ctx context.Context, employeeID string) error {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return nil
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}
	if err := s.ensureEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	var rec attendance.AttendanceRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.attendanceRepo.Get(ctx, req.EmployeeID, req.Date)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}
		rec = applyMark(existing, req, s.now())
		if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	return rec, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, employeeID, date string) (bool, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !dateutil.Valid(date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return false, errs
	}

	removed, err := s.attendanceRepo.Delete(ctx, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance: %w", err)
	}
	return removed, nil
}

// CopyDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CopyDay(ctx context.Context, req attendance.CopyDayRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	note := "Copied from " + req.SourceDate
	copied := 0
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		source, err := s.attendanceRepo.ListByDate(ctx, req.SourceDate)
		if err != nil {
			return fmt.Errorf("failed to list source day: %w", err)
		}
		now := s.now()
		for _, src := range source {
			overtime := src.OvertimeHours
			rec := applyMark(nil, attendance.MarkAttendanceRequest{
				EmployeeID:    src.EmployeeID,
				Date:          req.TargetDate,
				Status:        src.Status,
				OvertimeHours: &overtime,
				Note:          &note,
				Actor:         req.Actor,
			}, now)
			if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("failed to copy attendance for employee %s: %w", src.EmployeeID, err)
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Copied attendance day", "source_date", req.SourceDate, "target_date", req.TargetDate, "count", copied, "actor", req.Actor)
	return copied, nil
}

// StampHoliday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StampHoliday(ctx context.Context, date, actor string) (int, error) {
	if !dateutil.Valid(date) {
		return 0, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	stamped := 0
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		active, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Status: string(employee.EmploymentStatusActive)})
		if err != nil {
			return fmt.Errorf("failed to list active employees: %w", err)
		}
		now := s.now()
		for _, emp := range active {
			existing, err := s.attendanceRepo.Get(ctx, emp.ID, date)
			if err != nil {
				return fmt.Errorf("failed to get attendance: %w", err)
			}
			rec := applyMark(existing, attendance.MarkAttendanceRequest{
				EmployeeID: emp.ID,
				Date:       date,
				Status:     attendance.StatusPublicHoliday,
				Actor:      actor,
			}, now)
			if err := s.attendanceRepo.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("failed to stamp holiday for employee %s: %w", emp.ID, err)
			}
			stamped++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Stamped public holiday", "date", date, "employees", stamped)
	return stamped, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, employeeID, date string) (attendance.AttendanceRecord, error) {
	rec, err := s.attendanceRepo.Get(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if rec == nil {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return *rec, nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// Month implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Month(ctx context.Context, year int, month time.Month) (attendance.MonthSheet, error) {
	if year < 1900 || year > 9999 || month < time.January || month > time.December {
		return attendance.MonthSheet{}, validator.ValidationErrors{{Field: "month", Message: "year and month must form a valid period"}}
	}
	start, end := dateutil.MonthBounds(year, month)
	dates, err := dateutil.Range(start, end)
	if err != nil {
		return attendance.MonthSheet{}, err
	}

	var (
		employees []employee.Employee
		records   []attendance.AttendanceRecord
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx, employee.EmployeeFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.List(gCtx, attendance.AttendanceFilter{StartDate: start, EndDate: end})
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.MonthSheet{}, fmt.Errorf("failed to load month: %w", err)
	}

	byEmployee := make(map[string][]attendance.AttendanceRecord)
	for _, r := range records {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	sheet := attendance.MonthSheet{Year: year, Month: int(month), Dates: dates, Rows: []attendance.MonthRow{}}
	for _, emp := range employees {
		recs := byEmployee[emp.ID]
		if !emp.Active && len(recs) == 0 {
			continue
		}
		row := attendance.MonthRow{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.Code,
			EmployeeName: emp.Name,
			Days:         make(map[string]attendance.Status, len(recs)),
		}
		for _, r := range recs {
			row.Days[r.Date] = r.Status
			row.OvertimeHours += r.OvertimeHours
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	sort.SliceStable(sheet.Rows, func(i, j int) bool { return sheet.Rows[i].EmployeeCode < sheet.Rows[j].EmployeeCode })
	return sheet, nil
}
