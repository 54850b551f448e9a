package dashboard

import (
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// DashboardRequest selects the day the dashboard describes. Empty means today.
type DashboardRequest struct {
	Date string `json:"date,omitempty"`
}

func (r *DashboardRequest) Validate() error {
	if r.Date != "" && !dateutil.Valid(r.Date) {
		return validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return nil
}

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Date                 string                  `json:"date"`
	EmployeeSummary      EmployeeSummaryResponse `json:"employee_summary"`
	AttendanceStats      AttendanceStatsResponse `json:"attendance_stats"`
	PendingLeaveRequests int                     `json:"pending_leave_requests"`
	ExpiringDocuments    int                     `json:"expiring_documents"`
}

// EmployeeSummaryResponse counts employees overall and by grouping.
type EmployeeSummaryResponse struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	NewThisMonth int            `json:"new_this_month"` // joined in the dashboard's month
	ByTeam       map[string]int `json:"by_team"`        // active only
	ByStaffType  map[string]int `json:"by_staff_type"`  // active only
}

// AttendanceStatsResponse is the marking progress for one day.
type AttendanceStatsResponse struct {
	Counts   map[string]int `json:"counts"`
	Marked   int            `json:"marked"`
	Unmarked int            `json:"unmarked"` // active employees with no record
}
