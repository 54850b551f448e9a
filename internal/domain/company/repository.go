package company

import "context"

type CompanyRepository interface {
	List(ctx context.Context) ([]Company, error)
	// Add fails with ErrCompanyExists on a case-insensitive duplicate
	Add(ctx context.Context, name Company) error
	Rename(ctx context.Context, current, name Company) error
	Delete(ctx context.Context, name Company) error
}
