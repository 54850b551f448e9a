package attendance

import (
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attachment"
)

// StandardShiftHours is credited for a Present day.
const StandardShiftHours = 8.0

type Status string

const (
	StatusPresent        Status = "P"
	StatusAbsent         Status = "A"
	StatusWeekOff        Status = "W"
	StatusPublicHoliday  Status = "PH"
	StatusSickLeave      Status = "SL"
	StatusAnnualLeave    Status = "AL"
	StatusUnpaidLeave    Status = "UL"
	StatusEmergencyLeave Status = "EL"
)

// Statuses lists every status code in display order.
var Statuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusWeekOff,
	StatusPublicHoliday,
	StatusSickLeave,
	StatusAnnualLeave,
	StatusUnpaidLeave,
	StatusEmergencyLeave,
}

var statusLabels = map[Status]string{
	StatusPresent:        "Present",
	StatusAbsent:         "Absent",
	StatusWeekOff:        "Week Off",
	StatusPublicHoliday:  "Public Holiday",
	StatusSickLeave:      "Sick Leave",
	StatusAnnualLeave:    "Annual Leave",
	StatusUnpaidLeave:    "Unpaid Leave",
	StatusEmergencyLeave: "Emergency Leave",
}

// ParseStatus accepts a status code in any case.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	return statusLabels[s]
}

// Unpaid reports whether the day is deducted from salary.
func (s Status) Unpaid() bool {
	return s == StatusAbsent || s == StatusUnpaidLeave
}

// HoursFor derives hours worked from a status.
func HoursFor(s Status) float64 {
	if s == StatusPresent {
		return StandardShiftHours
	}
	return 0
}

// AttendanceRecord is unique per (EmployeeID, Date).
type AttendanceRecord struct {
	EmployeeID    string                 `json:"employee_id"`
	Date          string                 `json:"date"`
	Status        Status                 `json:"status"`
	HoursWorked   float64                `json:"hours_worked"`
	OvertimeHours float64                `json:"overtime_hours"`
	Attachment    *attachment.Attachment `json:"attachment,omitempty"`
	Note          string                 `json:"note,omitempty"`
	UpdatedBy     string                 `json:"updated_by,omitempty"`
	CheckInTime   *time.Time             `json:"check_in_time,omitempty"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// SameKey reports whether both records address the same employee and day.
func (r AttendanceRecord) SameKey(employeeID, date string) bool {
	return r.EmployeeID == employeeID && r.Date == date
}
