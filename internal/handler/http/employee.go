package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	OffboardEmployee(w http.ResponseWriter, r *http.Request)
	RehireEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := employee.EmployeeFilter{
		Company:    q.Get("company"),
		Department: q.Get("department"),
		Team:       q.Get("team"),
		StaffType:  q.Get("staff_type"),
		Status:     q.Get("status"),
		Search:     q.Get("search"),
	}

	employees, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, employees, len(employees))
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, e)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create employee", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", e)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	e, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", e)
}

// OffboardEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) OffboardEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.OffboardRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.Actor = middleware.Actor(r.Context())

	e, err := h.employeeService.Offboard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee offboarded successfully", e)
}

// RehireEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) RehireEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.RehireRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")
	req.Actor = middleware.Actor(r.Context())

	e, err := h.employeeService.Rehire(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee rehired successfully", e)
}
