package payroll

import (
	"errors"
	"fmt"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
)

var (
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrEmployeeNotFound = fmt.Errorf("payroll: %w", employee.ErrEmployeeNotFound)
)
