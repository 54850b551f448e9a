package local

import (
	"context"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type companyRepository struct {
	items *kvstore.Collection[company.Company]
}

func NewCompanyRepository(store kvstore.Store) company.CompanyRepository {
	return &companyRepository{items: newCollection[company.Company](store, collectionCompanies)}
}

func (r *companyRepository) List(ctx context.Context) ([]company.Company, error) {
	return r.items.Load(ctx)
}

func (r *companyRepository) Add(ctx context.Context, name company.Company) error {
	return r.items.Update(ctx, func(items []company.Company) ([]company.Company, error) {
		if indexOf(items, name.Same) >= 0 {
			return nil, company.ErrCompanyExists
		}
		return append(items, name), nil
	})
}

func (r *companyRepository) Rename(ctx context.Context, current, name company.Company) error {
	return r.items.Update(ctx, func(items []company.Company) ([]company.Company, error) {
		i := indexOf(items, current.Same)
		if i < 0 {
			return nil, company.ErrCompanyNotFound
		}
		clash := indexOf(items, name.Same)
		if clash >= 0 && clash != i {
			return nil, company.ErrCompanyExists
		}
		items[i] = name
		return items, nil
	})
}

func (r *companyRepository) Delete(ctx context.Context, name company.Company) error {
	return r.items.Update(ctx, func(items []company.Company) ([]company.Company, error) {
		i := indexOf(items, name.Same)
		if i < 0 {
			return nil, company.ErrCompanyNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}
