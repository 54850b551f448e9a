package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns headcount, the day's attendance progress, pending
	// leave requests and documents expiring within 30 days
	GetDashboard(ctx context.Context, req DashboardRequest) (DashboardResponse, error)
}
