package deduction

import (
	"context"
	"testing"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeductionService(t *testing.T) deduction.DeductionService {
	t.Helper()
	store := kvstore.NewMemory()
	employees := local.NewEmployeeRepository(store)
	_, err := employees.Create(context.Background(), employee.Employee{ID: "e1", Code: "E001", Name: "Amal"})
	require.NoError(t, err)
	return NewDeductionService(local.NewDeductionRepository(store), employees, idgen.NewSequence("ded"))
}

func TestDeductionService_CreateAndListByMonth(t *testing.T) {
	ctx := context.Background()
	svc := newDeductionService(t)

	for _, date := range []string{"2025-04-10", "2025-04-28", "2025-05-01"} {
		_, err := svc.Create(ctx, deduction.CreateDeductionRequest{
			EmployeeID: "e1",
			Date:       date,
			Type:       deduction.DeductionTypeFine,
			Amount:     decimal.NewFromInt(50),
		})
		require.NoError(t, err)
	}

	april, err := svc.List(ctx, deduction.DeductionFilter{EmployeeID: "e1", Year: 2025, Month: time.April})
	require.NoError(t, err)
	assert.Len(t, april, 2)

	all, err := svc.List(ctx, deduction.DeductionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeductionService_Create_Validation(t *testing.T) {
	svc := newDeductionService(t)

	_, err := svc.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: "e1",
		Date:       "2025-04-10",
		Type:       "Bonus",
		Amount:     decimal.Zero,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
	assert.Contains(t, verrs.ToMap(), "amount")
}

func TestDeductionService_Create_UnknownEmployee(t *testing.T) {
	svc := newDeductionService(t)

	_, err := svc.Create(context.Background(), deduction.CreateDeductionRequest{
		EmployeeID: "ghost",
		Date:       "2025-04-10",
		Type:       deduction.DeductionTypeOther,
		Amount:     decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, deduction.ErrEmployeeNotFound)
}

func TestDeductionService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newDeductionService(t)
	d, err := svc.Create(ctx, deduction.CreateDeductionRequest{EmployeeID: "e1", Date: "2025-04-10", Type: deduction.DeductionTypeDamage, Amount: decimal.NewFromInt(20)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, d.ID))
	assert.ErrorIs(t, svc.Delete(ctx, d.ID), deduction.ErrDeductionNotFound)
}
