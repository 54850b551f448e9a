package leave

import (
	"errors"
	"fmt"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
)

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrEmployeeNotFound             = fmt.Errorf("leave: %w", employee.ErrEmployeeNotFound)
)
