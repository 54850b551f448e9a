package leave

import (
	"context"
)

type LeaveService interface {
	// Submit files a new pending request
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)

	// SetStatus approves or rejects a pending request. Approval stamps
	// attendance for every day in range and deducts balance for annual and sick leave.
	SetStatus(ctx context.Context, req SetLeaveStatusRequest) (LeaveRequest, error)

	Get(ctx context.Context, id string) (LeaveRequest, error)

	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// Delete removes a request that is still pending
	Delete(ctx context.Context, id string) error
}
