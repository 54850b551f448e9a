package deduction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
)

type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	employeeRepo  employee.EmployeeRepository
	ids           idgen.Generator
	now           func() time.Time
}

func NewDeductionService(deductionRepo deduction.DeductionRepository, employeeRepo employee.EmployeeRepository, ids idgen.Generator) deduction.DeductionService {
	return &DeductionServiceImpl{
		deductionRepo: deductionRepo,
		employeeRepo:  employeeRepo,
		ids:           ids,
		now:           time.Now,
	}
}

// Create implements deduction.DeductionService.
func (s *DeductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionRecord, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionRecord{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return deduction.DeductionRecord{}, deduction.ErrEmployeeNotFound
		}
		return deduction.DeductionRecord{}, fmt.Errorf("failed to get employee: %w", err)
	}

	created, err := s.deductionRepo.Create(ctx, deduction.DeductionRecord{
		ID:         s.ids.NewID(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Type:       req.Type,
		Amount:     req.Amount,
		Note:       strings.TrimSpace(req.Note),
		CreatedAt:  s.now(),
	})
	if err != nil {
		return deduction.DeductionRecord{}, fmt.Errorf("failed to create deduction: %w", err)
	}
	return created, nil
}

// List implements deduction.DeductionService.
func (s *DeductionServiceImpl) List(ctx context.Context, filter deduction.DeductionFilter) ([]deduction.DeductionRecord, error) {
	records, err := s.deductionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	return records, nil
}

// Delete implements deduction.DeductionService.
func (s *DeductionServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.deductionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	return nil
}
