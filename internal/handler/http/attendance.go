package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Month(w http.ResponseWriter, r *http.Request)
	CopyDay(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Actor = middleware.Actor(r.Context())

	record, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance saved", record)
}

// Delete implements AttendanceHandler
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	deleted, err := h.attendanceService.Delete(r.Context(), q.Get("employee_id"), q.Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !deleted {
		response.HandleError(w, attendance.ErrAttendanceNotFound)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// Get implements AttendanceHandler
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements AttendanceHandler
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.AttendanceFilter{
		EmployeeID: q.Get("employee_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, records, len(records))
}

// Month implements AttendanceHandler
func (h *attendanceHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	year, month, err := queryPeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	sheet, err := h.attendanceService.Month(r.Context(), year, time.Month(month))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// CopyDay implements AttendanceHandler
func (h *attendanceHandlerImpl) CopyDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.CopyDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Actor = middleware.Actor(r.Context())

	copied, err := h.attendanceService.CopyDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance copied", map[string]int{"copied": copied})
}
