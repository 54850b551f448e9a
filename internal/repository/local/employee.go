package local

import (
	"context"
	"sort"
	"strings"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/employee"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

type employeeRepository struct {
	items *kvstore.Collection[employee.Employee]
}

func NewEmployeeRepository(store kvstore.Store) employee.EmployeeRepository {
	return &employeeRepository{items: newCollection[employee.Employee](store, collectionEmployees)}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	i := indexOf(items, func(e employee.Employee) bool { return e.ID == id })
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return items[i], nil
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	code = strings.TrimSpace(code)
	i := indexOf(items, func(e employee.Employee) bool { return strings.EqualFold(e.Code, code) })
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return items[i], nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	items, err := r.items.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]employee.Employee, 0, len(items))
	for _, e := range items {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	err := r.items.Update(ctx, func(items []employee.Employee) ([]employee.Employee, error) {
		if indexOf(items, func(e employee.Employee) bool { return strings.EqualFold(e.Code, newEmployee.Code) }) >= 0 {
			return nil, employee.ErrEmployeeCodeExists
		}
		return append(items, newEmployee), nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, updated employee.Employee) error {
	return r.items.Update(ctx, func(items []employee.Employee) ([]employee.Employee, error) {
		i := indexOf(items, func(e employee.Employee) bool { return e.ID == updated.ID })
		if i < 0 {
			return nil, employee.ErrEmployeeNotFound
		}
		clash := indexOf(items, func(e employee.Employee) bool {
			return e.ID != updated.ID && strings.EqualFold(e.Code, updated.Code)
		})
		if clash >= 0 {
			return nil, employee.ErrEmployeeCodeExists
		}
		items[i] = updated
		return items, nil
	})
}
