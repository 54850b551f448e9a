package local

import (
	"context"
	"sort"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/leave"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type leaveRequestRepository struct {
	items *kvstore.Collection[leave.LeaveRequest]
}

func NewLeaveRequestRepository(store kvstore.Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{items: newCollection[leave.LeaveRequest](store, collectionLeaveRequests)}
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := r.items.Update(ctx, func(items []leave.LeaveRequest) ([]leave.LeaveRequest, error) {
		return append(items, req), nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	i := indexOf(items, func(lr leave.LeaveRequest) bool { return lr.ID == id })
	if i < 0 {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return items[i], nil
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]leave.LeaveRequest, 0, len(items))
	for _, lr := range items {
		if filter.Matches(lr) {
			out = append(out, lr)
		}
	}
	// newest first
	sort.SliceStable(out, func(i, j int) bool { return out[i].AppliedOn.After(out[j].AppliedOn) })
	return out, nil
}

func (r *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	return r.items.Update(ctx, func(items []leave.LeaveRequest) ([]leave.LeaveRequest, error) {
		i := indexOf(items, func(lr leave.LeaveRequest) bool { return lr.ID == req.ID })
		if i < 0 {
			return nil, leave.ErrLeaveRequestNotFound
		}
		items[i] = req
		return items, nil
	})
}

func (r *leaveRequestRepository) Delete(ctx context.Context, id string) error {
	return r.items.Update(ctx, func(items []leave.LeaveRequest) ([]leave.LeaveRequest, error) {
		i := indexOf(items, func(lr leave.LeaveRequest) bool { return lr.ID == id })
		if i < 0 {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}
