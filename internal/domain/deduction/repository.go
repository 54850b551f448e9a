package deduction

import "context"

type DeductionRepository interface {
	Create(ctx context.Context, d DeductionRecord) (DeductionRecord, error)
	GetByID(ctx context.Context, id string) (DeductionRecord, error)
	List(ctx context.Context, filter DeductionFilter) ([]DeductionRecord, error)
	Delete(ctx context.Context, id string) error
}
