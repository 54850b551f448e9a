package employee

import (
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attachment"
	"github.com/shopspring/decimal"
)

// DefaultLeaveBalance is granted to every newly created employee.
const DefaultLeaveBalance = 30

type Employee struct {
	ID              string              `json:"id"`
	Code            string              `json:"code"`
	Name            string              `json:"name"`
	Designation     string              `json:"designation"`
	Department      string              `json:"department"`
	Company         string              `json:"company"`
	JoiningDate     string              `json:"joining_date"`
	StaffType       StaffType           `json:"staff_type"`
	Team            Team                `json:"team"`
	WorkLocation    string              `json:"work_location"`
	LeaveBalance    int                 `json:"leave_balance"`
	Active          bool                `json:"active"`
	Status          EmploymentStatus    `json:"status"`
	Salary          Salary              `json:"salary"`
	BankName        string              `json:"bank_name,omitempty"`
	IBAN            string              `json:"iban,omitempty"`
	Documents       Documents           `json:"documents"`
	VacationDate    string              `json:"vacation_date,omitempty"`
	Offboarding     *OffboardingDetails `json:"offboarding,omitempty"`
	RejoiningDate   string              `json:"rejoining_date,omitempty"`
	RejoiningReason string              `json:"rejoining_reason,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// SetActive is the only way Active and Status change, keeping them in step.
func (e *Employee) SetActive(active bool) {
	e.Active = active
	if active {
		e.Status = EmploymentStatusActive
	} else {
		e.Status = EmploymentStatusInactive
	}
}

// DeductLeave lowers the leave balance by days, never below zero.
func (e *Employee) DeductLeave(days int) {
	e.LeaveBalance -= days
	if e.LeaveBalance < 0 {
		e.LeaveBalance = 0
	}
}

type StaffType string

const (
	StaffTypeOffice StaffType = "Office"
	StaffTypeWorker StaffType = "Worker"
)

// ParseStaffType matches case-insensitively.
func ParseStaffType(s string) (StaffType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "office":
		return StaffTypeOffice, true
	case "worker":
		return StaffTypeWorker, true
	}
	return "", false
}

type Team string

const (
	TeamInternal    Team = "Internal Team"
	TeamExternal    Team = "External Team"
	TeamOfficeStaff Team = "Office Staff"
)

// ParseTeam matches case-insensitively.
func ParseTeam(s string) (Team, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "internal team":
		return TeamInternal, true
	case "external team":
		return TeamExternal, true
	case "office staff":
		return TeamOfficeStaff, true
	}
	return "", false
}

// OvertimeEligible reports whether the team earns overtime, holiday and
// week-off pay.
func (t Team) OvertimeEligible() bool {
	return t != TeamOfficeStaff
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "Active"
	EmploymentStatusInactive EmploymentStatus = "Inactive"
)

// ParseEmploymentStatus matches case-insensitively.
func ParseEmploymentStatus(s string) (EmploymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return EmploymentStatusActive, true
	case "inactive":
		return EmploymentStatusInactive, true
	}
	return "", false
}

type Salary struct {
	Basic       decimal.Decimal `json:"basic"`
	Housing     decimal.Decimal `json:"housing"`
	Transport   decimal.Decimal `json:"transport"`
	Other       decimal.Decimal `json:"other"`
	AirTicket   decimal.Decimal `json:"air_ticket"`
	LeaveSalary decimal.Decimal `json:"leave_salary"`
}

func (s Salary) Gross() decimal.Decimal {
	return decimal.Sum(s.Basic, s.Housing, s.Transport, s.Other, s.AirTicket, s.LeaveSalary)
}

func (s Salary) components() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"basic":        s.Basic,
		"housing":      s.Housing,
		"transport":    s.Transport,
		"other":        s.Other,
		"air_ticket":   s.AirTicket,
		"leave_salary": s.LeaveSalary,
	}
}

type Documents struct {
	EmiratesID       string `json:"emirates_id,omitempty"`
	EmiratesIDExpiry string `json:"emirates_id_expiry,omitempty"`
	Passport         string `json:"passport,omitempty"`
	PassportExpiry   string `json:"passport_expiry,omitempty"`
	LabourCard       string `json:"labour_card,omitempty"`
	LabourCardExpiry string `json:"labour_card_expiry,omitempty"`
}

type ExitType string

const (
	ExitTypeResignation   ExitType = "Resignation"
	ExitTypeTermination   ExitType = "Termination"
	ExitTypeEndOfContract ExitType = "End of Contract"
	ExitTypeRetirement    ExitType = "Retirement"
	ExitTypeAbsconding    ExitType = "Absconding"
)

var ExitTypes = []ExitType{
	ExitTypeResignation,
	ExitTypeTermination,
	ExitTypeEndOfContract,
	ExitTypeRetirement,
	ExitTypeAbsconding,
}

type Settlement struct {
	Gratuity        decimal.Decimal `json:"gratuity"`
	LeaveEncashment decimal.Decimal `json:"leave_encashment"`
	SalaryDues      decimal.Decimal `json:"salary_dues"`
	OtherDues       decimal.Decimal `json:"other_dues"`
	Deductions      decimal.Decimal `json:"deductions"`
	NetSettlement   decimal.Decimal `json:"net_settlement"`
}

// Net computes gratuity + leave encashment + salary dues + other dues - deductions.
func (s Settlement) Net() decimal.Decimal {
	return decimal.Sum(s.Gratuity, s.LeaveEncashment, s.SalaryDues, s.OtherDues).Sub(s.Deductions)
}

// Recomputed returns s with NetSettlement derived from the other fields.
func (s Settlement) Recomputed() Settlement {
	s.NetSettlement = s.Net()
	return s
}

type OffboardingDetails struct {
	ExitType       ExitType                `json:"exit_type"`
	ExitDate       string                  `json:"exit_date"`
	Reason         string                  `json:"reason"`
	Settlement     Settlement              `json:"settlement"`
	AssetsReturned bool                    `json:"assets_returned"`
	Attachments    []attachment.Attachment `json:"attachments,omitempty"`
	RecordedBy     string                  `json:"recorded_by,omitempty"`
	RecordedAt     time.Time               `json:"recorded_at"`
}
