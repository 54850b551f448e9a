package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/payroll"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetPayrollSummary(w http.ResponseWriter, r *http.Request)
	GetEmployeePayroll(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetPayrollSummary computes the month for every active employee matching the filters.
func (h *payrollHandlerImpl) GetPayrollSummary(w http.ResponseWriter, r *http.Request) {
	year, month, err := queryPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := r.URL.Query()
	result, err := h.payrollService.Summary(r.Context(), payroll.PayrollFilter{
		Year:       year,
		Month:      month,
		Company:    q.Get("company"),
		Department: q.Get("department"),
		Team:       q.Get("team"),
		StaffType:  q.Get("staff_type"),
		Search:     q.Get("search"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeePayroll(w http.ResponseWriter, r *http.Request) {
	year, month, err := queryPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	line, err := h.payrollService.EmployeePayroll(r.Context(), chi.URLParam(r, "id"), year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, line)
}

// DownloadPayslip renders into memory first so failures still produce a JSON error.
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	year, month, err := queryPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")
	var buf bytes.Buffer
	err = h.payrollService.WritePayslip(r.Context(), payroll.PayslipRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      time.Month(month),
	}, &buf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", fmt.Sprintf("payslip-%s-%04d-%02d.pdf", employeeID, year, month), buf.Bytes())
}
