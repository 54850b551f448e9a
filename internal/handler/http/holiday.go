package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/holiday"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

// List implements HolidayHandler. Without ?year the current year is listed.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year", time.Now().Year())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, holidays, len(holidays))
}

// Create implements HolidayHandler
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Actor = middleware.Actor(r.Context())

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created", created)
}

// Delete implements HolidayHandler
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.holidayService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}
