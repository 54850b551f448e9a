package importer

import "fmt"

// ImportResult summarises a bulk import. Rows that fail are reported in
// Errors and do not stop the rest of the batch.
type ImportResult struct {
	Success int      `json:"success"`
	Errors  []string `json:"errors"`
}

// RowError is a failure on one input row. Row counts from 1 and includes the header.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// Fail records a row error.
func (r *ImportResult) Fail(row int, format string, args ...any) {
	r.Errors = append(r.Errors, RowError{Row: row, Message: fmt.Sprintf(format, args...)}.Error())
}

// AttendanceColumns is the attendance import header.
var AttendanceColumns = []string{"EmployeeCode", "Date", "Status", "Overtime"}

// EmployeeColumns is the fixed positional employee import header.
var EmployeeColumns = []string{
	"Code", "Name", "Designation", "Department", "Company", "JoiningDate",
	"Type", "Status", "Team", "Location",
	"Basic", "Housing", "Transport", "Other", "AirTicket", "LeaveSalary",
	"EmiratesID", "EIDExpiry", "Passport", "PassExpiry", "LabourCard", "LCExpiry",
	"VacationDate",
}

// Employee column positions.
const (
	ColCode = iota
	ColName
	ColDesignation
	ColDepartment
	ColCompany
	ColJoiningDate
	ColType
	ColStatus
	ColTeam
	ColLocation
	ColBasic
	ColHousing
	ColTransport
	ColOther
	ColAirTicket
	ColLeaveSalary
	ColEmiratesID
	ColEIDExpiry
	ColPassport
	ColPassExpiry
	ColLabourCard
	ColLCExpiry
	ColVacationDate
)
