package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/core"
)

func TestBudgetCreate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	midMonth := time.Date(2025, time.June, 17, 15, 4, 5, 0, time.UTC)
	created, err := svc.Budget.Create(ctx, category.ID, midMonth, decimal.RequireFromString("400"))
	require.NoError(t, err)
	require.NotNil(t, created)

	// Months are normalized to their first instant in UTC.
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), created.Month)
	assert.Equal(t, "Groceries", created.CategoryName)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("400")))
}

func TestBudgetCreate_NonPositiveAmount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	_, err = svc.Budget.Create(ctx, category.ID, time.Now(), decimal.Zero)
	assert.True(t, core.IsValidation(err))

	_, err = svc.Budget.Create(ctx, category.ID, time.Now(), decimal.RequireFromString("-10"))
	assert.True(t, core.IsValidation(err))
}

func TestBudgetCreate_MissingCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Budget.Create(context.Background(), uuid.Must(uuid.NewV4()), time.Now(), decimal.RequireFromString("100"))
	assert.True(t, core.IsValidation(err))
}

func TestBudgetCreate_DuplicateCategoryAndMonth(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	_, err = svc.Budget.Create(ctx, category.ID, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("400"))
	require.NoError(t, err)

	// A different day in the same month normalizes to the same slot.
	_, err = svc.Budget.Create(ctx, category.ID, time.Date(2025, time.June, 28, 9, 0, 0, 0, time.UTC), decimal.RequireFromString("500"))
	assert.True(t, core.IsConflict(err))
}

func TestBudgetUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	created, err := svc.Budget.Create(ctx, category.ID, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("400"))
	require.NoError(t, err)

	// Changing only the amount keeps the slot and succeeds.
	updated, err := svc.Budget.Update(ctx, created.ID, category.ID, created.Month, decimal.RequireFromString("450"))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("450")))
}

func TestBudgetUpdate_SlotTaken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err = svc.Budget.Create(ctx, category.ID, june, decimal.RequireFromString("400"))
	require.NoError(t, err)
	julyBudget, err := svc.Budget.Create(ctx, category.ID, july, decimal.RequireFromString("400"))
	require.NoError(t, err)

	_, err = svc.Budget.Update(ctx, julyBudget.ID, category.ID, june, decimal.RequireFromString("400"))
	assert.True(t, core.IsConflict(err))
}

func TestBudgetUpdate_NotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	updated, err := svc.Budget.Update(ctx, uuid.Must(uuid.NewV4()), category.ID, time.Now(), decimal.RequireFromString("100"))
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestBudgetDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)
	created, err := svc.Budget.Create(ctx, category.ID, time.Now(), decimal.RequireFromString("400"))
	require.NoError(t, err)

	deleted, err := svc.Budget.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Budget.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBudgetListByMonth(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	groceries, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)
	rent, err := svc.Category.Create(ctx, "Rent", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	_, err = svc.Budget.Create(ctx, groceries.ID, june, decimal.RequireFromString("400"))
	require.NoError(t, err)
	_, err = svc.Budget.Create(ctx, rent.ID, june, decimal.RequireFromString("1200"))
	require.NoError(t, err)
	_, err = svc.Budget.Create(ctx, groceries.ID, july, decimal.RequireFromString("450"))
	require.NoError(t, err)

	budgets, err := svc.Budget.ListByMonth(ctx, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, budgets, 2)

	names := []string{budgets[0].CategoryName, budgets[1].CategoryName}
	assert.ElementsMatch(t, []string{"Groceries", "Rent"}, names)
}
