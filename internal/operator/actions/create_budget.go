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

// CreateBudget inserts a budget after resolving its category and
// checking the one-budget-per-(category, month) rule inside the write
// transaction. Month is expected pre-normalized.
type CreateBudget struct {
	CategoryID uuid.UUID
	Month      time.Time
	Amount     decimal.Decimal

	Result       *budget.Budget
	CategoryName string
}

func (a *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return core.NewValidation("Category not found")
	}

	existing, err := writer.Budgets.FindByCategoryAndMonth(ctx, a.CategoryID, a.Month)
	if err != nil {
		return err
	}
	if existing != nil {
		return core.NewConflict("Budget already exists for this category and month")
	}

	create := &budget.Create{
		CategoryID: a.CategoryID,
		Month:      a.Month,
		Amount:     a.Amount,
	}
	id, err := writer.Budgets.Insert(ctx, create)
	if uniqueViolation(err) {
		return core.NewConflict("Budget already exists for this category and month")
	}
	if err != nil {
		return err
	}

	a.Result = &budget.Budget{
		ID:         id,
		CategoryID: create.CategoryID,
		Month:      create.Month,
		Amount:     create.Amount,
	}
	a.CategoryName = category.Name
	return nil
}
