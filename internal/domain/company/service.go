package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	// Rename changes the list entry only; employees keep the old name
	Rename(ctx context.Context, req RenameCompanyRequest) (Company, error)
	Delete(ctx context.Context, name string) error
}
