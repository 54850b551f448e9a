package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/auth"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/holiday"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/importer"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/leave"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/payroll"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/spreadsheet"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth and users
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrProtectedUser):
		Conflict(w, "User is protected")

	// Employees; the per-domain employee errors wrap ErrEmployeeNotFound
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive):
		Conflict(w, "Employee is already active")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")

	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Public holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A public holiday already exists on this date")

	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")

	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyExists):
		Conflict(w, "Company already exists")

	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Uploads and loose input
	case errors.Is(err, importer.ErrEmptyInput):
		BadRequest(w, "Import file is empty", nil)
	case errors.Is(err, importer.ErrUnsupportedFileType), errors.Is(err, spreadsheet.ErrUnsupportedFileType):
		BadRequest(w, "Unsupported file type: only .csv and .xlsx are accepted", nil)
	case errors.Is(err, spreadsheet.ErrNoSheets):
		BadRequest(w, "Workbook has no sheets", nil)
	case errors.Is(err, dateutil.ErrInvalidDate), errors.Is(err, dateutil.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
