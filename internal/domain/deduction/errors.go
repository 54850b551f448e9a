package deduction

import (
	"errors"
	"fmt"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
)

var (
	ErrDeductionNotFound = errors.New("deduction not found")
	ErrEmployeeNotFound  = fmt.Errorf("deduction: %w", employee.ErrEmployeeNotFound)
)
