package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type DeductionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type deductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &deductionHandlerImpl{deductionService: deductionService}
}

// List implements DeductionHandler
func (h *deductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", 0)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, err := queryInt(r, "month", 0)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.deductionService.List(r.Context(), deduction.DeductionFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Year:       year,
		Month:      time.Month(month),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, records, len(records))
}

// Create implements DeductionHandler
func (h *deductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.deductionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction recorded", record)
}

// Delete implements DeductionHandler
func (h *deductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.deductionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deleted", nil)
}
