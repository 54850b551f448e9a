package company

import (
	"context"
	"testing"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shiftsync/shiftsync-backend-go/internal/repository/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompanyService() company.CompanyService {
	return NewCompanyService(local.NewCompanyRepository(kvstore.NewMemory()))
}

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newCompanyService()

	created, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "  Acme Trading  "})
	require.NoError(t, err)
	assert.Equal(t, company.Company("Acme Trading"), created)

	_, err = svc.Create(ctx, company.CreateCompanyRequest{Name: "ACME TRADING"})
	assert.ErrorIs(t, err, company.ErrCompanyExists)

	_, err = svc.Create(ctx, company.CreateCompanyRequest{Name: " "})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestCompanyService_RenameAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newCompanyService()
	_, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, company.RenameCompanyRequest{Current: "acme", Name: "Acme Group"})
	require.NoError(t, err)
	assert.Equal(t, company.Company("Acme Group"), renamed)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []company.Company{"Acme Group"}, list)

	require.NoError(t, svc.Delete(ctx, "Acme Group"))
	assert.ErrorIs(t, svc.Delete(ctx, "Acme Group"), company.ErrCompanyNotFound)
}
