package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// recentTransactionCount is how many of the latest transactions the
// dashboard carries, regardless of the selected month.
const recentTransactionCount = 10

// DashboardService assembles the dashboard from a single snapshot, so
// the balance total, month aggregates, and recent activity all reflect
// the same committed state.
type DashboardService struct {
	storage storage.Store
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{storage: store}
}

// Snapshot builds the dashboard for the given month. The total balance
// and recent transactions are not month-scoped; everything else is.
func (s *DashboardService) Snapshot(ctx context.Context, year int, month time.Month) (*Dashboard, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	accounts, err := snap.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{}
	for _, a := range accounts {
		dashboard.TotalBalance = dashboard.TotalBalance.Add(a.Balance)
	}

	income, expense, byCategory, err := monthTotals(ctx, snap, year, month)
	if err != nil {
		return nil, err
	}
	dashboard.MonthIncome = income
	dashboard.MonthExpense = expense

	accountNames, categoryNames, err := displayNames(ctx, snap)
	if err != nil {
		return nil, err
	}

	for id, totals := range byCategory {
		if totals.expense.IsZero() {
			continue
		}
		dashboard.TopExpenseCategories = append(dashboard.TopExpenseCategories, CategoryExpense{
			CategoryID:   id,
			CategoryName: categoryNames[id],
			TotalExpense: totals.expense,
		})
	}
	sort.Slice(dashboard.TopExpenseCategories, func(i, j int) bool {
		a, b := dashboard.TopExpenseCategories[i], dashboard.TopExpenseCategories[j]
		if cmp := a.TotalExpense.Cmp(b.TotalExpense); cmp != 0 {
			return cmp > 0
		}
		return uuidLess(a.CategoryID, b.CategoryID)
	})
	budgets, err := snap.Budgets.ListByMonth(ctx, core.MonthStart(year, month))
	if err != nil {
		return nil, err
	}
	for _, b := range budgets {
		totals := byCategory[b.CategoryID]
		dashboard.BudgetProgress = append(dashboard.BudgetProgress, BudgetProgress{
			CategoryID:   b.CategoryID,
			CategoryName: categoryNames[b.CategoryID],
			Budgeted:     b.Amount,
			Actual:       totals.expense,
			OverBudget:   totals.expense.GreaterThan(b.Amount),
		})
	}
	sort.Slice(dashboard.BudgetProgress, func(i, j int) bool {
		a, b := dashboard.BudgetProgress[i], dashboard.BudgetProgress[j]
		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}
		return uuidLess(a.CategoryID, b.CategoryID)
	})

	recent, err := recentTransactions(ctx, snap, accountNames, categoryNames)
	if err != nil {
		return nil, err
	}
	dashboard.RecentTransactions = recent

	return dashboard, nil
}

func recentTransactions(ctx context.Context, snap *storage.Snapshot, accountNames, categoryNames map[uuid.UUID]string) ([]Transaction, error) {
	rows, err := snap.Transactions.Query(ctx, &transaction.Filter{Limit: recentTransactionCount})
	if err != nil {
		return nil, err
	}

	recent := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		recent = append(recent, *transactionFromStorage(row, accountNames[row.AccountID], categoryNames[row.CategoryID]))
	}
	return recent, nil
}
