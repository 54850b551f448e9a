package http

import (
	"net/http"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/dashboard"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard?date=YYYY-MM-DD
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.GetDashboard(r.Context(), dashboard.DashboardRequest{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
