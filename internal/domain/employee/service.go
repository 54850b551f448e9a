package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// Create onboards a new employee with the default leave balance
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	Get(ctx context.Context, id string) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// Offboard marks an active employee inactive and records the exit settlement
	Offboard(ctx context.Context, req OffboardRequest) (Employee, error)

	// Rehire reactivates an inactive employee; the joining date becomes the rejoining date
	Rehire(ctx context.Context, req RehireRequest) (Employee, error)
}
