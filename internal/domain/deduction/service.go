package deduction

import "context"

type DeductionService interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionRecord, error)
	List(ctx context.Context, filter DeductionFilter) ([]DeductionRecord, error)
	Delete(ctx context.Context, id string) error
}
