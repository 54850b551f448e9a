package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Rename(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, companies, len(companies))
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := c.companyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create company", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created successfully", created)
}

// Rename implements CompanyHandler. Employees keep the name they were saved with.
func (c *CompanyHandlerImpl) Rename(w http.ResponseWriter, r *http.Request) {
	var req company.RenameCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Current = chi.URLParam(r, "name")

	renamed, err := c.companyService.Rename(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company renamed successfully", renamed)
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.companyService.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}
