package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepository,
	}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.Company, error) {
	companies, err := c.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	name := company.Normalize(req.Name)
	if err := c.CompanyRepository.Add(ctx, name); err != nil {
		return "", fmt.Errorf("failed to add company: %w", err)
	}

	slog.Info("Company added", "company", name)
	return name, nil
}

// Rename implements company.CompanyService.
func (c *CompanyServiceImpl) Rename(ctx context.Context, req company.RenameCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	current := company.Normalize(req.Current)
	name := company.Normalize(req.Name)
	if err := c.CompanyRepository.Rename(ctx, current, name); err != nil {
		return "", fmt.Errorf("failed to rename company: %w", err)
	}

	slog.Info("Company renamed", "from", current, "to", name)
	return name, nil
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, name string) error {
	if validator.IsEmpty(name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	if err := c.CompanyRepository.Delete(ctx, company.Normalize(name)); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
