package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/leave"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// ListRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := leave.LeaveRequestFilter{
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
		Type:       q.Get("type"),
	}

	requests, err := l.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, requests, len(requests))
}

// GetRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	request, err := l.leaveService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request)
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	request, err := l.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Failed to submit leave request", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", request)
}

// SetStatus implements LeaveHandler. Approval also stamps attendance.
func (l *LeaveHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.SetLeaveStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.Actor = middleware.Actor(r.Context())

	request, err := l.leaveService.SetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+string(request.Status), request)
}

// DeleteRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := l.leaveService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}
