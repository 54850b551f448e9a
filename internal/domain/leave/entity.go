package leave

import (
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
)

// LeaveType reuses the attendance code the leave is recorded under.
type LeaveType string

const (
	LeaveTypeSick      LeaveType = LeaveType(attendance.StatusSickLeave)
	LeaveTypeAnnual    LeaveType = LeaveType(attendance.StatusAnnualLeave)
	LeaveTypeUnpaid    LeaveType = LeaveType(attendance.StatusUnpaidLeave)
	LeaveTypeEmergency LeaveType = LeaveType(attendance.StatusEmergencyLeave)
)

var LeaveTypes = []LeaveType{LeaveTypeSick, LeaveTypeAnnual, LeaveTypeUnpaid, LeaveTypeEmergency}

func (t LeaveType) Valid() bool {
	for _, lt := range LeaveTypes {
		if t == lt {
			return true
		}
	}
	return false
}

// AttendanceStatus is the status stamped on each day of an approved request.
func (t LeaveType) AttendanceStatus() attendance.Status {
	return attendance.Status(t)
}

// DeductsBalance reports whether approval consumes leave balance.
func (t LeaveType) DeductsBalance() bool {
	return t == LeaveTypeAnnual || t == LeaveTypeSick
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "Pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "Approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string             `json:"id"`
	EmployeeID string             `json:"employee_id"`
	Type       LeaveType          `json:"type"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	TotalDays  int                `json:"total_days"`
	Reason     string             `json:"reason"`
	Status     LeaveRequestStatus `json:"status"`
	AppliedOn  time.Time          `json:"applied_on"`
	DecidedAt  *time.Time         `json:"decided_at,omitempty"`
	DecidedBy  string             `json:"decided_by,omitempty"`
}

// IsPending returns true if request is pending approval
func (lr *LeaveRequest) IsPending() bool {
	return lr.Status == LeaveRequestStatusPending
}
