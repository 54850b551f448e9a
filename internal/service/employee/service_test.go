package employee

import (
	"context"
	"testing"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeService(t *testing.T, companies ...company.Company) employee.EmployeeService {
	t.Helper()
	store := kvstore.NewMemory()
	companyRepo := local.NewCompanyRepository(store)
	for _, c := range companies {
		require.NoError(t, companyRepo.Add(context.Background(), c))
	}
	return NewEmployeeService(store, local.NewEmployeeRepository(store), companyRepo, idgen.NewSequence("emp"))
}

func TestEmployeeService_Create_Defaults(t *testing.T) {
	svc := newEmployeeService(t, "Acme Trading")

	e, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Code:        " E001 ",
		Name:        "Amal Khan",
		Company:     "acme trading",
		JoiningDate: "2024-01-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", e.ID)
	assert.Equal(t, "E001", e.Code)
	assert.Equal(t, "Acme Trading", e.Company)
	assert.Equal(t, employee.StaffTypeWorker, e.StaffType)
	assert.Equal(t, employee.TeamInternal, e.Team)
	assert.Equal(t, employee.DefaultLeaveBalance, e.LeaveBalance)
	assert.True(t, e.Active)
	assert.Equal(t, employee.EmploymentStatusActive, e.Status)
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc := newEmployeeService(t)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Team:        "Contractors",
		JoiningDate: "15/01/2024",
		Salary:      employee.Salary{Basic: decimal.NewFromInt(-1)},
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "code")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "team")
	assert.Contains(t, fields, "joining_date")
	assert.Contains(t, fields, "salary.basic")
}

func TestEmployeeService_Create_UnknownCompany(t *testing.T) {
	svc := newEmployeeService(t, "Acme Trading")

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Code: "E001", Name: "Amal", Company: "Globex"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "company")
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{Code: "E001", Name: "Amal"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{Code: "e001", Name: "Bilal"})

	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)
	e, err := svc.Create(ctx, employee.CreateEmployeeRequest{Code: "E001", Name: "Amal", Designation: "Driver"})
	require.NoError(t, err)

	name := "Amal K."
	team := "office staff"
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: e.ID, Name: &name, Team: &team})

	require.NoError(t, err)
	assert.Equal(t, "Amal K.", updated.Name)
	assert.Equal(t, employee.TeamOfficeStaff, updated.Team)
	assert.Equal(t, "Driver", updated.Designation)
	assert.Equal(t, employee.DefaultLeaveBalance, updated.LeaveBalance)

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Offboard_RecomputesSettlement(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)
	e, err := svc.Create(ctx, employee.CreateEmployeeRequest{Code: "E001", Name: "Amal"})
	require.NoError(t, err)

	off, err := svc.Offboard(ctx, employee.OffboardRequest{
		EmployeeID: e.ID,
		ExitType:   string(employee.ExitTypeResignation),
		ExitDate:   "2025-06-30",
		Reason:     "relocating",
		Settlement: employee.Settlement{
			Gratuity:        decimal.NewFromInt(5000),
			LeaveEncashment: decimal.NewFromInt(1200),
			SalaryDues:      decimal.NewFromInt(3000),
			OtherDues:       decimal.NewFromInt(300),
			Deductions:      decimal.NewFromInt(500),
			NetSettlement:   decimal.NewFromInt(1),
		},
		Actor: "hr",
	})

	require.NoError(t, err)
	assert.False(t, off.Active)
	assert.Equal(t, employee.EmploymentStatusInactive, off.Status)
	require.NotNil(t, off.Offboarding)
	assert.True(t, decimal.NewFromInt(9000).Equal(off.Offboarding.Settlement.NetSettlement), off.Offboarding.Settlement.NetSettlement.String())
	assert.Equal(t, "hr", off.Offboarding.RecordedBy)

	_, err = svc.Offboard(ctx, employee.OffboardRequest{EmployeeID: e.ID, ExitType: string(employee.ExitTypeTermination), ExitDate: "2025-07-01"})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyInactive)
}

func TestEmployeeService_Offboard_Validation(t *testing.T) {
	svc := newEmployeeService(t)

	_, err := svc.Offboard(context.Background(), employee.OffboardRequest{EmployeeID: "x", ExitType: "Vanished", ExitDate: "2025-06-31"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "exit_type")
	assert.Contains(t, verrs.ToMap(), "exit_date")
}

func TestEmployeeService_OffboardRehireRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)
	e, err := svc.Create(ctx, employee.CreateEmployeeRequest{Code: "E001", Name: "Amal", JoiningDate: "2020-02-01"})
	require.NoError(t, err)

	_, err = svc.Offboard(ctx, employee.OffboardRequest{EmployeeID: e.ID, ExitType: string(employee.ExitTypeEndOfContract), ExitDate: "2024-12-31"})
	require.NoError(t, err)

	rehired, err := svc.Rehire(ctx, employee.RehireRequest{EmployeeID: e.ID, RejoiningDate: "2025-03-01", Reason: "returned"})
	require.NoError(t, err)

	assert.True(t, rehired.Active)
	assert.Equal(t, employee.EmploymentStatusActive, rehired.Status)
	assert.Nil(t, rehired.Offboarding)
	assert.Equal(t, "2025-03-01", rehired.JoiningDate, "the original joining date is replaced")
	assert.Equal(t, "2025-03-01", rehired.RejoiningDate)
	assert.Equal(t, "returned", rehired.RejoiningReason)

	stored, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, rehired.JoiningDate, stored.JoiningDate)
	assert.Nil(t, stored.Offboarding)
}

func TestEmployeeService_Rehire_ActiveEmployeeRejected(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(t)
	e, err := svc.Create(ctx, employee.CreateEmployeeRequest{Code: "E001", Name: "Amal", JoiningDate: "2020-02-01"})
	require.NoError(t, err)

	_, err = svc.Rehire(ctx, employee.RehireRequest{EmployeeID: e.ID, RejoiningDate: "2025-03-01"})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyActive)

	stored, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "2020-02-01", stored.JoiningDate)
}

func TestEmployeeService_Rehire_UnknownEmployee(t *testing.T) {
	svc := newEmployeeService(t)

	_, err := svc.Rehire(context.Background(), employee.RehireRequest{EmployeeID: "ghost", RejoiningDate: "2025-03-01"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
