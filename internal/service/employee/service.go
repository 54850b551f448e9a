package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	tx           database.Transactor
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	ids          idgen.Generator
	now          func() time.Time
}

func NewEmployeeService(
	tx database.Transactor,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	ids idgen.Generator,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:           tx,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		ids:          ids,
		now:          time.Now,
	}
}

// resolveCompany returns the managed company name matching name, so employees
// carry the list's spelling.
func (s *EmployeeServiceImpl) resolveCompany(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list companies: %w", err)
	}
	for _, c := range companies {
		if c.Same(company.Company(name)) {
			return string(c), nil
		}
	}
	return "", validator.ValidationErrors{{Field: "company", Message: "company must be one of the managed companies"}}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	companyName, err := s.resolveCompany(ctx, req.Company)
	if err != nil {
		return employee.Employee{}, err
	}

	staffType := employee.StaffTypeWorker
	if st, ok := employee.ParseStaffType(req.StaffType); ok {
		staffType = st
	}
	team := employee.TeamInternal
	if t, ok := employee.ParseTeam(req.Team); ok {
		team = t
	}

	now := s.now()
	newEmployee := employee.Employee{
		ID:           s.ids.NewID(),
		Code:         req.Code,
		Name:         req.Name,
		Designation:  strings.TrimSpace(req.Designation),
		Department:   strings.TrimSpace(req.Department),
		Company:      companyName,
		JoiningDate:  req.JoiningDate,
		StaffType:    staffType,
		Team:         team,
		WorkLocation: strings.TrimSpace(req.WorkLocation),
		LeaveBalance: employee.DefaultLeaveBalance,
		Salary:       req.Salary,
		BankName:     strings.TrimSpace(req.BankName),
		IBAN:         strings.TrimSpace(req.IBAN),
		Documents:    req.Documents,
		VacationDate: req.VacationDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	newEmployee.SetActive(true)

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee onboarded", "employee_id", created.ID, "code", created.Code)
	return created, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.employeeRepo.GetByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		if req.Code != nil {
			e.Code = strings.TrimSpace(*req.Code)
		}
		if req.Name != nil {
			e.Name = strings.TrimSpace(*req.Name)
		}
		if req.Designation != nil {
			e.Designation = strings.TrimSpace(*req.Designation)
		}
		if req.Department != nil {
			e.Department = strings.TrimSpace(*req.Department)
		}
		if req.Company != nil {
			companyName, err := s.resolveCompany(ctx, *req.Company)
			if err != nil {
				return err
			}
			e.Company = companyName
		}
		if req.JoiningDate != nil {
			e.JoiningDate = *req.JoiningDate
		}
		if req.StaffType != nil {
			e.StaffType, _ = employee.ParseStaffType(*req.StaffType)
		}
		if req.Team != nil {
			e.Team, _ = employee.ParseTeam(*req.Team)
		}
		if req.WorkLocation != nil {
			e.WorkLocation = strings.TrimSpace(*req.WorkLocation)
		}
		if req.Salary != nil {
			e.Salary = *req.Salary
		}
		if req.BankName != nil {
			e.BankName = strings.TrimSpace(*req.BankName)
		}
		if req.IBAN != nil {
			e.IBAN = strings.TrimSpace(*req.IBAN)
		}
		if req.Documents != nil {
			e.Documents = *req.Documents
		}
		if req.VacationDate != nil {
			e.VacationDate = *req.VacationDate
		}
		e.UpdatedAt = s.now()

		if err := s.employeeRepo.Update(ctx, e); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Offboard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Offboard(ctx context.Context, req employee.OffboardRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var offboarded employee.Employee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !e.Active {
			return employee.ErrEmployeeAlreadyInactive
		}

		now := s.now()
		e.SetActive(false)
		e.Offboarding = &employee.OffboardingDetails{
			ExitType:       employee.ExitType(req.ExitType),
			ExitDate:       req.ExitDate,
			Reason:         strings.TrimSpace(req.Reason),
			Settlement:     req.Settlement.Recomputed(),
			AssetsReturned: req.AssetsReturned,
			Attachments:    req.Attachments,
			RecordedBy:     req.Actor,
			RecordedAt:     now,
		}
		e.UpdatedAt = now

		if err := s.employeeRepo.Update(ctx, e); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		offboarded = e
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("Employee offboarded",
		"employee_id", offboarded.ID,
		"exit_type", req.ExitType,
		"exit_date", req.ExitDate,
		"net_settlement", offboarded.Offboarding.Settlement.NetSettlement.String(),
		"actor", req.Actor,
	)
	return offboarded, nil
}

// Rehire implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Rehire(ctx context.Context, req employee.RehireRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var rehired employee.Employee
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if e.Active {
			return employee.ErrEmployeeAlreadyActive
		}

		e.SetActive(true)
		e.JoiningDate = req.RejoiningDate
		e.Offboarding = nil
		e.RejoiningDate = req.RejoiningDate
		e.RejoiningReason = strings.TrimSpace(req.Reason)
		e.UpdatedAt = s.now()

		if err := s.employeeRepo.Update(ctx, e); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		rehired = e
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("Employee rehired", "employee_id", rehired.ID, "rejoining_date", rehired.RejoiningDate, "actor", req.Actor)
	return rehired, nil
}
