package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	Delete(ctx context.Context, id string) error
}
