package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/budget"
)

// UpdateBudget replaces a budget's fields. When the (category, month)
// slot changes, the new slot must be free.
type UpdateBudget struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Month      time.Time
	Amount     decimal.Decimal

	NotFound     bool
	Result       *budget.Budget
	CategoryName string
}

func (a *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budgets.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		a.NotFound = true
		return nil
	}

	category, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return core.NewValidation("Category not found")
	}

	slotChanged := existing.CategoryID != a.CategoryID || !existing.Month.Equal(a.Month)
	if slotChanged {
		occupant, err := writer.Budgets.FindByCategoryAndMonth(ctx, a.CategoryID, a.Month)
		if err != nil {
			return err
		}
		if occupant != nil && occupant.ID != a.ID {
			return core.NewConflict("Budget already exists for this category and month")
		}
	}

	update := &budget.Update{
		CategoryID: a.CategoryID,
		Month:      a.Month,
		Amount:     a.Amount,
	}
	if err := writer.Budgets.Update(ctx, a.ID, update); err != nil {
		if uniqueViolation(err) {
			return core.NewConflict("Budget already exists for this category and month")
		}
		return err
	}

	a.Result = &budget.Budget{
		ID:         a.ID,
		CategoryID: update.CategoryID,
		Month:      update.Month,
		Amount:     update.Amount,
		CreatedAt:  existing.CreatedAt,
	}
	a.CategoryName = category.Name
	return nil
}
