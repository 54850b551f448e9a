package attendance

import (
	"errors"
	"fmt"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
)

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNotFound   = fmt.Errorf("attendance: %w", employee.ErrEmployeeNotFound)
)
