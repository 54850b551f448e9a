package importer

import "context"

type ImportService interface {
	// ImportAttendance reads EmployeeCode,Date,Status,Overtime rows and marks attendance
	ImportAttendance(ctx context.Context, text, actor string) (ImportResult, error)

	// ImportEmployees reads the fixed employee columns, updating by code or creating
	ImportEmployees(ctx context.Context, text string) (ImportResult, error)
}
