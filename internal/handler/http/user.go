package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/middleware"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.List(w, users, len(users))
}

func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, u)
}

// Me returns the caller's own account.
func (h *userHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.userService.Get(r.Context(), middleware.Actor(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, u)
}

func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.userService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User created successfully", u)
}

func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Username = chi.URLParam(r, "username")

	u, err := h.userService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User updated successfully", u)
}

func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == middleware.Actor(r.Context()) {
		response.BadRequest(w, "You cannot delete your own account", nil)
		return
	}

	if err := h.userService.Delete(r.Context(), username); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User deleted successfully", nil)
}
