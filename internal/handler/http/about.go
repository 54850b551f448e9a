package http

import (
	"net/http"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/about"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type AboutHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type aboutHandlerImpl struct {
	aboutService about.AboutService
}

func NewAboutHandler(aboutService about.AboutService) AboutHandler {
	return &aboutHandlerImpl{aboutService: aboutService}
}

func (h *aboutHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.aboutService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

func (h *aboutHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req about.UpdateAboutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	data, err := h.aboutService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "About page updated", data)
}
