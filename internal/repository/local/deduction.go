package local

import (
	"context"
	"sort"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/deduction"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type deductionRepository struct {
	items *kvstore.Collection[deduction.DeductionRecord]
}

func NewDeductionRepository(store kvstore.Store) deduction.DeductionRepository {
	return &deductionRepository{items: newCollection[deduction.DeductionRecord](store, collectionDeductions)}
}

func (r *deductionRepository) Create(ctx context.Context, d deduction.DeductionRecord) (deduction.DeductionRecord, error) {
	err := r.items.Update(ctx, func(items []deduction.DeductionRecord) ([]deduction.DeductionRecord, error) {
		return append(items, d), nil
	})
	if err != nil {
		return deduction.DeductionRecord{}, err
	}
	return d, nil
}

func (r *deductionRepository) GetByID(ctx context.Context, id string) (deduction.DeductionRecord, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return deduction.DeductionRecord{}, err
	}
	i := indexOf(items, func(d deduction.DeductionRecord) bool { return d.ID == id })
	if i < 0 {
		return deduction.DeductionRecord{}, deduction.ErrDeductionNotFound
	}
	return items[i], nil
}

func (r *deductionRepository) List(ctx context.Context, filter deduction.DeductionFilter) ([]deduction.DeductionRecord, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]deduction.DeductionRecord, 0, len(items))
	for _, d := range items {
		if filter.Matches(d) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *deductionRepository) Delete(ctx context.Context, id string) error {
	return r.items.Update(ctx, func(items []deduction.DeductionRecord) ([]deduction.DeductionRecord, error) {
		i := indexOf(items, func(d deduction.DeductionRecord) bool { return d.ID == id })
		if i < 0 {
			return nil, deduction.ErrDeductionNotFound
		}
		return append(items[:i], items[i+1:]...), nil
	})
}
