package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/leave"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
)

type LeaveServiceImpl struct {
	tx                database.Transactor
	leaveRepo         leave.LeaveRequestRepository
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
	ids               idgen.Generator
	now               func() time.Time
}

func NewLeaveService(
	tx database.Transactor,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
	ids idgen.Generator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                tx,
		leaveRepo:         leaveRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		ids:               ids,
		now:               time.Now,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveRequest{}, leave.ErrEmployeeNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	totalDays, err := dateutil.DaysInclusive(req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to count leave days: %w", err)
	}

	newRequest := leave.LeaveRequest{
		ID:         s.ids.NewID(),
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalDays:  totalDays,
		Reason:     req.Reason,
		Status:     leave.LeaveRequestStatusPending,
		AppliedOn:  s.now(),
	}

	created, err := s.leaveRepo.Create(ctx, newRequest)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// SetStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) SetStatus(ctx context.Context, req leave.SetLeaveStatusRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	var decided leave.LeaveRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.leaveRepo.GetByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if req.Status == leave.LeaveRequestStatusApproved {
			if err := s.applyApproval(ctx, request, req.Actor); err != nil {
				return err
			}
		}

		decidedAt := s.now()
		request.Status = req.Status
		request.DecidedAt = &decidedAt
		request.DecidedBy = req.Actor
		if err := s.leaveRepo.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		decided = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("Leave request decided", "leave_request_id", decided.ID, "employee_id", decided.EmployeeID, "status", decided.Status, "actor", req.Actor)
	return decided, nil
}

// applyApproval stamps every day of the request and consumes balance for
// leave types that carry one.
func (s *LeaveServiceImpl) applyApproval(ctx context.Context, request leave.LeaveRequest, actor string) error {
	days, err := dateutil.Range(request.StartDate, request.EndDate)
	if err != nil {
		return fmt.Errorf("failed to expand leave range: %w", err)
	}

	for _, day := range days {
		_, err := s.attendanceService.Mark(ctx, attendance.MarkAttendanceRequest{
			EmployeeID: request.EmployeeID,
			Date:       day,
			Status:     request.Type.AttendanceStatus(),
			Actor:      actor,
		})
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return leave.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to mark leave day %s: %w", day, err)
		}
	}

	if !request.Type.DeductsBalance() {
		return nil
	}

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}
	emp.DeductLeave(len(days))
	emp.UpdatedAt = s.now()
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return fmt.Errorf("failed to update leave balance: %w", err)
	}
	return nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.leaveRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}
		if err := s.leaveRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete leave request: %w", err)
		}
		return nil
	})
}
