package employee

import (
	"strings"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attachment"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Code         string    `json:"code" validate:"required,max=50"`
	Name         string    `json:"name" validate:"required,max=200"`
	Designation  string    `json:"designation"`
	Department   string    `json:"department"`
	Company      string    `json:"company"`
	JoiningDate  string    `json:"joining_date"`
	StaffType    string    `json:"staff_type"`
	Team         string    `json:"team"`
	WorkLocation string    `json:"work_location"`
	Salary       Salary    `json:"salary"`
	BankName     string    `json:"bank_name"`
	IBAN         string    `json:"iban"`
	Documents    Documents `json:"documents"`
	VacationDate string    `json:"vacation_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)

	errs := validator.Struct(r)

	if r.StaffType != "" {
		if _, ok := ParseStaffType(r.StaffType); !ok {
			errs = append(errs, validator.ValidationError{Field: "staff_type", Message: "staff_type must be Office or Worker"})
		}
	}
	if r.Team != "" {
		if _, ok := ParseTeam(r.Team); !ok {
			errs = append(errs, validator.ValidationError{Field: "team", Message: "team must be Internal Team, External Team or Office Staff"})
		}
	}
	errs = append(errs, validateDates(map[string]string{
		"joining_date":  r.JoiningDate,
		"vacation_date": r.VacationDate,
	})...)
	errs = append(errs, validateDocuments(r.Documents)...)
	errs = append(errs, validateSalary(r.Salary)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries only the fields being changed.
// Status and leave balance are changed through offboarding, rehire and leave approval.
type UpdateEmployeeRequest struct {
	ID           string     `json:"-"`
	Code         *string    `json:"code,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Designation  *string    `json:"designation,omitempty"`
	Department   *string    `json:"department,omitempty"`
	Company      *string    `json:"company,omitempty"`
	JoiningDate  *string    `json:"joining_date,omitempty"`
	StaffType    *string    `json:"staff_type,omitempty"`
	Team         *string    `json:"team,omitempty"`
	WorkLocation *string    `json:"work_location,omitempty"`
	Salary       *Salary    `json:"salary,omitempty"`
	BankName     *string    `json:"bank_name,omitempty"`
	IBAN         *string    `json:"iban,omitempty"`
	Documents    *Documents `json:"documents,omitempty"`
	VacationDate *string    `json:"vacation_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Code != nil && validator.IsEmpty(*r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code cannot be empty"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.StaffType != nil {
		if _, ok := ParseStaffType(*r.StaffType); !ok {
			errs = append(errs, validator.ValidationError{Field: "staff_type", Message: "staff_type must be Office or Worker"})
		}
	}
	if r.Team != nil {
		if _, ok := ParseTeam(*r.Team); !ok {
			errs = append(errs, validator.ValidationError{Field: "team", Message: "team must be Internal Team, External Team or Office Staff"})
		}
	}
	dates := map[string]string{}
	if r.JoiningDate != nil {
		dates["joining_date"] = *r.JoiningDate
	}
	if r.VacationDate != nil {
		dates["vacation_date"] = *r.VacationDate
	}
	errs = append(errs, validateDates(dates)...)
	if r.Documents != nil {
		errs = append(errs, validateDocuments(*r.Documents)...)
	}
	if r.Salary != nil {
		errs = append(errs, validateSalary(*r.Salary)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Team       string `json:"team,omitempty"`
	StaffType  string `json:"staff_type,omitempty"`
	Status     string `json:"status,omitempty"`
	Search     string `json:"search,omitempty"`
}

// Matches applies the filter to a single employee. Empty fields match everything;
// Search looks at code, name and designation.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Company != "" && !strings.EqualFold(f.Company, e.Company) {
		return false
	}
	if f.Department != "" && !strings.EqualFold(f.Department, e.Department) {
		return false
	}
	if f.Team != "" && !strings.EqualFold(f.Team, string(e.Team)) {
		return false
	}
	if f.StaffType != "" && !strings.EqualFold(f.StaffType, string(e.StaffType)) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, string(e.Status)) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(e.Code), q) &&
			!strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Designation), q) {
			return false
		}
	}
	return true
}

type OffboardRequest struct {
	EmployeeID     string                  `json:"-"`
	ExitType       string                  `json:"exit_type" validate:"required"`
	ExitDate       string                  `json:"exit_date" validate:"required"`
	Reason         string                  `json:"reason"`
	Settlement     Settlement              `json:"settlement"`
	AssetsReturned bool                    `json:"assets_returned"`
	Attachments    []attachment.Attachment `json:"attachments"`
	Actor          string                  `json:"-"`
}

func (r *OffboardRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.ExitType != "" && !validator.IsInSlice(r.ExitType, exitTypeStrings()) {
		errs = append(errs, validator.ValidationError{Field: "exit_type", Message: "exit_type must be one of: " + strings.Join(exitTypeStrings(), ", ")})
	}
	if r.ExitDate != "" && !dateutil.Valid(r.ExitDate) {
		errs = append(errs, validator.ValidationError{Field: "exit_date", Message: "exit_date must be in YYYY-MM-DD format"})
	}
	settlement := map[string]decimal.Decimal{
		"gratuity":         r.Settlement.Gratuity,
		"leave_encashment": r.Settlement.LeaveEncashment,
		"salary_dues":      r.Settlement.SalaryDues,
		"other_dues":       r.Settlement.OtherDues,
		"deductions":       r.Settlement.Deductions,
	}
	for field, v := range settlement {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "settlement." + field, Message: field + " cannot be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RehireRequest struct {
	EmployeeID    string `json:"-"`
	RejoiningDate string `json:"rejoining_date" validate:"required"`
	Reason        string `json:"reason"`
	Actor         string `json:"-"`
}

func (r *RehireRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.RejoiningDate != "" && !dateutil.Valid(r.RejoiningDate) {
		errs = append(errs, validator.ValidationError{Field: "rejoining_date", Message: "rejoining_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func exitTypeStrings() []string {
	out := make([]string, len(ExitTypes))
	for i, t := range ExitTypes {
		out[i] = string(t)
	}
	return out
}

func validateDates(dates map[string]string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for field, v := range dates {
		if v != "" && !dateutil.Valid(v) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
		}
	}
	return errs
}

func validateDocuments(d Documents) validator.ValidationErrors {
	return validateDates(map[string]string{
		"documents.emirates_id_expiry": d.EmiratesIDExpiry,
		"documents.passport_expiry":    d.PassportExpiry,
		"documents.labour_card_expiry": d.LabourCardExpiry,
	})
}

func validateSalary(s Salary) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for field, v := range s.components() {
		if v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "salary." + field, Message: field + " cannot be negative"})
		}
	}
	return errs
}
