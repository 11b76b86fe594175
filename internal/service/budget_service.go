package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// BudgetService handles budget business logic. Months are normalized to
// the first instant of the calendar month in UTC before any storage
// access, and at most one budget may exist per (category, month).
type BudgetService struct {
	storage  storage.Store
	operator *operator.OperatorDelegator
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store storage.Store, op *operator.OperatorDelegator) *BudgetService {
	return &BudgetService{storage: store, operator: op}
}

// Create validates and persists a new budget.
func (s *BudgetService) Create(ctx context.Context, categoryID uuid.UUID, month time.Time, amount decimal.Decimal) (*Budget, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, core.NewValidation("Amount must be greater than zero")
	}

	action := &actions.CreateBudget{
		CategoryID: categoryID,
		Month:      core.NormalizeMonth(month),
		Amount:     amount,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return budgetFromStorage(action.Result, action.CategoryName), nil
}

// Update replaces all fields of an existing budget. A missing ID is
// reported as (nil, nil).
func (s *BudgetService) Update(ctx context.Context, id, categoryID uuid.UUID, month time.Time, amount decimal.Decimal) (*Budget, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, core.NewValidation("Amount must be greater than zero")
	}

	action := &actions.UpdateBudget{
		ID:         id,
		CategoryID: categoryID,
		Month:      core.NormalizeMonth(month),
		Amount:     amount,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.NotFound {
		return nil, nil
	}
	return budgetFromStorage(action.Result, action.CategoryName), nil
}

// Delete removes a budget and reports whether it existed.
func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.DeleteBudget{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Deleted, nil
}

// ListByMonth returns the budgets for one calendar month with category
// names resolved against the same snapshot.
func (s *BudgetService) ListByMonth(ctx context.Context, year int, month time.Month) ([]Budget, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	rows, err := snap.Budgets.ListByMonth(ctx, core.MonthStart(year, month))
	if err != nil {
		return nil, err
	}

	result := make([]Budget, len(rows))
	for i, row := range rows {
		name := ""
		category, err := snap.Categories.FindByID(ctx, row.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			name = category.Name
		}
		result[i] = *budgetFromStorage(row, name)
	}
	return result, nil
}
