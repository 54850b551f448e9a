package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/company"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/importer"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/dateutil"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ImportServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	companyRepo       company.CompanyRepository
	attendanceService attendance.AttendanceService
	ids               idgen.Generator
	now               func() time.Time
}

func NewImportService(
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	attendanceService attendance.AttendanceService,
	ids idgen.Generator,
) importer.ImportService {
	return &ImportServiceImpl{
		employeeRepo:      employeeRepo,
		companyRepo:       companyRepo,
		attendanceService: attendanceService,
		ids:               ids,
		now:               time.Now,
	}
}

// parseRows splits CSV text into data rows, dropping the header line.
// Each returned row carries its 1-based line number in the file, so blank
// lines still count towards the reported row.
func parseRows(text string) ([]numberedRow, error) {
	if strings.TrimSpace(text) == "" {
		return nil, importer.ErrEmptyInput
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	var rows []numberedRow
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		if blank(record) {
			continue
		}
		line, _ := r.FieldPos(0)
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		rows = append(rows, numberedRow{number: line, fields: record})
	}
	return rows, nil
}

type numberedRow struct {
	number int
	fields []string
}

// field returns column i, or "" when the row is short.
func (r numberedRow) field(i int) string {
	if i < len(r.fields) {
		return r.fields[i]
	}
	return ""
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (s *ImportServiceImpl) employeesByCode(ctx context.Context) (map[string]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	byCode := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		byCode[strings.ToLower(e.Code)] = e
	}
	return byCode, nil
}

// ImportAttendance implements importer.ImportService.
func (s *ImportServiceImpl) ImportAttendance(ctx context.Context, text, actor string) (importer.ImportResult, error) {
	rows, err := parseRows(text)
	if err != nil {
		return importer.ImportResult{}, err
	}
	byCode, err := s.employeesByCode(ctx)
	if err != nil {
		return importer.ImportResult{}, err
	}

	result := importer.ImportResult{Errors: []string{}}
	for _, row := range rows {
		code := row.field(0)
		emp, ok := byCode[strings.ToLower(code)]
		if code == "" || !ok {
			result.Fail(row.number, "employee code %q not found", code)
			continue
		}

		date, err := dateutil.Normalize(row.field(1))
		if err != nil {
			result.Fail(row.number, "invalid date %q", row.field(1))
			continue
		}

		status, ok := attendance.ParseStatus(row.field(2))
		if !ok {
			result.Fail(row.number, "unknown status %q", row.field(2))
			continue
		}

		req := attendance.MarkAttendanceRequest{
			EmployeeID: emp.ID,
			Date:       date,
			Status:     status,
			Actor:      actor,
		}
		if raw := row.field(3); raw != "" {
			overtime, err := strconv.ParseFloat(raw, 64)
			if err != nil || overtime < 0 {
				result.Fail(row.number, "invalid overtime %q", raw)
				continue
			}
			req.OvertimeHours = &overtime
		}

		if _, err := s.attendanceService.Mark(ctx, req); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				result.Fail(row.number, "%s", verrs.Error())
				continue
			}
			return result, fmt.Errorf("failed to import row %d: %w", row.number, err)
		}
		result.Success++
	}

	slog.Info("Imported attendance", "success", result.Success, "errors", len(result.Errors), "actor", actor)
	return result, nil
}

// ImportEmployees implements importer.ImportService.
func (s *ImportServiceImpl) ImportEmployees(ctx context.Context, text string) (importer.ImportResult, error) {
	rows, err := parseRows(text)
	if err != nil {
		return importer.ImportResult{}, err
	}
	byCode, err := s.employeesByCode(ctx)
	if err != nil {
		return importer.ImportResult{}, err
	}
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return importer.ImportResult{}, fmt.Errorf("failed to list companies: %w", err)
	}

	result := importer.ImportResult{Errors: []string{}}
	for _, row := range rows {
		incoming, rowErr := employeeFromRow(row)
		if rowErr != "" {
			result.Fail(row.number, "%s", rowErr)
			continue
		}
		if incoming.Company != "" {
			name, ok := matchCompany(companies, incoming.Company)
			if !ok {
				result.Fail(row.number, "unknown company %q", incoming.Company)
				continue
			}
			incoming.Company = name
		}

		now := s.now()
		key := strings.ToLower(incoming.Code)
		if existing, ok := byCode[key]; ok {
			incoming.ID = existing.ID
			incoming.LeaveBalance = existing.LeaveBalance
			incoming.BankName = existing.BankName
			incoming.IBAN = existing.IBAN
			// a row that reactivates the employee drops the exit record
			if !incoming.Active {
				incoming.Offboarding = existing.Offboarding
			}
			incoming.RejoiningDate = existing.RejoiningDate
			incoming.RejoiningReason = existing.RejoiningReason
			incoming.CreatedAt = existing.CreatedAt
			incoming.UpdatedAt = now
			if err := s.employeeRepo.Update(ctx, incoming); err != nil {
				if errors.Is(err, employee.ErrEmployeeCodeExists) {
					result.Fail(row.number, "%v", err)
					continue
				}
				return result, fmt.Errorf("failed to import row %d: %w", row.number, err)
			}
		} else {
			incoming.ID = s.ids.NewID()
			incoming.LeaveBalance = employee.DefaultLeaveBalance
			incoming.CreatedAt = now
			incoming.UpdatedAt = now
			if _, err := s.employeeRepo.Create(ctx, incoming); err != nil {
				if errors.Is(err, employee.ErrEmployeeCodeExists) {
					result.Fail(row.number, "%v", err)
					continue
				}
				return result, fmt.Errorf("failed to import row %d: %w", row.number, err)
			}
		}
		byCode[key] = incoming
		result.Success++
	}

	slog.Info("Imported employees", "success", result.Success, "errors", len(result.Errors))
	return result, nil
}

// matchCompany returns the managed spelling of name.
func matchCompany(companies []company.Company, name string) (string, bool) {
	for _, c := range companies {
		if c.Same(company.Company(name)) {
			return string(c), true
		}
	}
	return "", false
}

// employeeFromRow maps the fixed employee columns. Unknown type, status and
// team values fall back to Worker, Active and Internal Team.
func employeeFromRow(row numberedRow) (employee.Employee, string) {
	e := employee.Employee{
		Code:         row.field(importer.ColCode),
		Name:         row.field(importer.ColName),
		Designation:  row.field(importer.ColDesignation),
		Department:   row.field(importer.ColDepartment),
		Company:      row.field(importer.ColCompany),
		WorkLocation: row.field(importer.ColLocation),
		Documents: employee.Documents{
			EmiratesID: row.field(importer.ColEmiratesID),
			Passport:   row.field(importer.ColPassport),
			LabourCard: row.field(importer.ColLabourCard),
		},
	}
	if e.Code == "" || e.Name == "" {
		return employee.Employee{}, "Code and Name are required"
	}

	e.StaffType = employee.StaffTypeWorker
	if st, ok := employee.ParseStaffType(row.field(importer.ColType)); ok {
		e.StaffType = st
	}
	e.Team = employee.TeamInternal
	if t, ok := employee.ParseTeam(row.field(importer.ColTeam)); ok {
		e.Team = t
	}
	status, ok := employee.ParseEmploymentStatus(row.field(importer.ColStatus))
	e.SetActive(!ok || status == employee.EmploymentStatusActive)

	dates := []struct {
		col    int
		name   string
		target *string
	}{
		{importer.ColJoiningDate, "JoiningDate", &e.JoiningDate},
		{importer.ColEIDExpiry, "EIDExpiry", &e.Documents.EmiratesIDExpiry},
		{importer.ColPassExpiry, "PassExpiry", &e.Documents.PassportExpiry},
		{importer.ColLCExpiry, "LCExpiry", &e.Documents.LabourCardExpiry},
		{importer.ColVacationDate, "VacationDate", &e.VacationDate},
	}
	for _, d := range dates {
		raw := row.field(d.col)
		if raw == "" {
			continue
		}
		normalized, err := dateutil.Normalize(raw)
		if err != nil {
			return employee.Employee{}, fmt.Sprintf("invalid %s %q", d.name, raw)
		}
		*d.target = normalized
	}

	amounts := []struct {
		col    int
		name   string
		target *decimal.Decimal
	}{
		{importer.ColBasic, "Basic", &e.Salary.Basic},
		{importer.ColHousing, "Housing", &e.Salary.Housing},
		{importer.ColTransport, "Transport", &e.Salary.Transport},
		{importer.ColOther, "Other", &e.Salary.Other},
		{importer.ColAirTicket, "AirTicket", &e.Salary.AirTicket},
		{importer.ColLeaveSalary, "LeaveSalary", &e.Salary.LeaveSalary},
	}
	for _, a := range amounts {
		raw := strings.ReplaceAll(row.field(a.col), ",", "")
		if raw == "" {
			*a.target = decimal.Zero
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil || v.IsNegative() {
			return employee.Employee{}, fmt.Sprintf("invalid %s amount %q", a.name, row.field(a.col))
		}
		*a.target = v
	}

	return e, ""
}
