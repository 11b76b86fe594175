package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/core"
)

func TestDashboardSnapshot(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, err := f.svc.Account.Create(ctx, "Savings", core.AccountTypeSavings, decimal.RequireFromString("5000"))
	require.NoError(t, err)

	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	_, err = f.svc.Budget.Create(ctx, f.food.ID, june, decimal.RequireFromString("300"))
	require.NoError(t, err)
	_, err = f.svc.Budget.Create(ctx, f.rent.ID, june, decimal.RequireFromString("1000"))
	require.NoError(t, err)

	f.spend(t, f.salary, "2000", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	f.spend(t, f.food, "350", time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC))
	f.spend(t, f.rent, "900", time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))

	dashboard, err := f.svc.Dashboard.Snapshot(ctx, 2025, time.June)
	require.NoError(t, err)

	// 1000 + 2000 - 350 - 900 on checking, plus the untouched savings.
	assert.True(t, dashboard.TotalBalance.Equal(decimal.RequireFromString("6750")))
	assert.True(t, dashboard.MonthIncome.Equal(decimal.RequireFromString("2000")))
	assert.True(t, dashboard.MonthExpense.Equal(decimal.RequireFromString("1250")))

	require.Len(t, dashboard.TopExpenseCategories, 2)
	assert.Equal(t, "Rent", dashboard.TopExpenseCategories[0].CategoryName)
	assert.Equal(t, "Food", dashboard.TopExpenseCategories[1].CategoryName)

	require.Len(t, dashboard.BudgetProgress, 2)
	food := dashboard.BudgetProgress[0]
	rent := dashboard.BudgetProgress[1]
	assert.Equal(t, "Food", food.CategoryName)
	assert.True(t, food.OverBudget)
	assert.True(t, food.Actual.Equal(decimal.RequireFromString("350")))
	assert.Equal(t, "Rent", rent.CategoryName)
	assert.False(t, rent.OverBudget)

	require.Len(t, dashboard.RecentTransactions, 3)
	assert.Equal(t, "Food", dashboard.RecentTransactions[0].CategoryName)
	assert.Equal(t, "Checking", dashboard.RecentTransactions[0].AccountName)
}

func TestDashboardSnapshot_RecentNotMonthScoped(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	// Twelve transactions spread over two months; the dashboard keeps
	// only the ten newest regardless of the selected month.
	for day := 1; day <= 6; day++ {
		f.spend(t, f.food, "1", time.Date(2025, time.May, day, 0, 0, 0, 0, time.UTC))
		f.spend(t, f.food, "1", time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC))
	}

	dashboard, err := f.svc.Dashboard.Snapshot(ctx, 2025, time.June)
	require.NoError(t, err)

	require.Len(t, dashboard.RecentTransactions, 10)
	assert.Equal(t, time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC), dashboard.RecentTransactions[0].Date)
	// The page reaches back into May.
	assert.Equal(t, time.Date(2025, time.May, 3, 0, 0, 0, 0, time.UTC), dashboard.RecentTransactions[9].Date)

	// Month aggregates stay month-scoped.
	assert.True(t, dashboard.MonthExpense.Equal(decimal.RequireFromString("6")))
}

func TestDashboardSnapshot_Empty(t *testing.T) {
	svc := newTestService(t)

	dashboard, err := svc.Dashboard.Snapshot(context.Background(), 2025, time.June)
	require.NoError(t, err)

	assert.True(t, dashboard.TotalBalance.IsZero())
	assert.True(t, dashboard.MonthIncome.IsZero())
	assert.True(t, dashboard.MonthExpense.IsZero())
	assert.Empty(t, dashboard.TopExpenseCategories)
	assert.Empty(t, dashboard.BudgetProgress)
	assert.Empty(t, dashboard.RecentTransactions)
}

func TestDashboardSnapshot_ExpenseRankingTieBreak(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	f.spend(t, f.food, "100", time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC))
	f.spend(t, f.rent, "100", time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC))

	dashboard, err := f.svc.Dashboard.Snapshot(ctx, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, dashboard.TopExpenseCategories, 2)

	// Equal totals fall back to category ID order, so the ranking is
	// deterministic across calls.
	first := dashboard.TopExpenseCategories[0].CategoryID
	second := dashboard.TopExpenseCategories[1].CategoryID
	assert.True(t, uuidLess(first, second))
}
