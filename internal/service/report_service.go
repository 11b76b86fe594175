package service

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// ReportService computes read-only aggregations over one snapshot per
// call, so every sub-query sees the same committed state.
type ReportService struct {
	storage storage.Store
}

// NewReportService creates a new ReportService.
func NewReportService(store storage.Store) *ReportService {
	return &ReportService{storage: store}
}

// BudgetVsActual compares every budget of the given month against the
// expense transactions realized in its category. Percentages are
// actual/budgeted*100 rounded half-up to two places, zero when the
// budgeted amount is zero.
func (s *ReportService) BudgetVsActual(ctx context.Context, year int, month time.Month) (*BudgetVsActualReport, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	budgets, err := snap.Budgets.ListByMonth(ctx, core.MonthStart(year, month))
	if err != nil {
		return nil, err
	}

	expenseByCategory, err := monthExpenseByCategory(ctx, snap, year, month)
	if err != nil {
		return nil, err
	}

	report := &BudgetVsActualReport{Year: year, Month: month}
	for _, b := range budgets {
		actual := expenseByCategory[b.CategoryID]

		status := core.BudgetStatusOn
		switch actual.Cmp(b.Amount) {
		case 1:
			status = core.BudgetStatusOver
		case -1:
			status = core.BudgetStatusUnder
		}

		name := ""
		category, err := snap.Categories.FindByID(ctx, b.CategoryID)
		if err != nil {
			return nil, err
		}
		if category != nil {
			name = category.Name
		}

		report.Categories = append(report.Categories, BudgetVsActualRow{
			CategoryID:   b.CategoryID,
			CategoryName: name,
			Budgeted:     b.Amount,
			Actual:       actual,
			Difference:   b.Amount.Sub(actual),
			Percentage:   core.Percentage(actual, b.Amount),
			Status:       status,
		})
		report.TotalBudgeted = report.TotalBudgeted.Add(b.Amount)
		report.TotalActual = report.TotalActual.Add(actual)
	}
	report.TotalDifference = report.TotalBudgeted.Sub(report.TotalActual)

	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}
		return uuidLess(a.CategoryID, b.CategoryID)
	})
	return report, nil
}

// MonthlySummary totals one month's income and expense, derives the
// savings rate (zero when there is no income), and compares net savings
// against the previous calendar month.
func (s *ReportService) MonthlySummary(ctx context.Context, year int, month time.Month) (*MonthlySummary, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	income, expense, byCategory, err := monthTotals(ctx, snap, year, month)
	if err != nil {
		return nil, err
	}

	prevYear, prevMonth := core.PreviousMonth(year, month)
	prevIncome, prevExpense, _, err := monthTotals(ctx, snap, prevYear, prevMonth)
	if err != nil {
		return nil, err
	}

	net := income.Sub(expense)
	previousNet := prevIncome.Sub(prevExpense)

	summary := &MonthlySummary{
		Year:               year,
		Month:              month,
		TotalIncome:        income,
		TotalExpense:       expense,
		NetSavings:         net,
		SavingsRate:        core.Percentage(net, income),
		PreviousNetSavings: previousNet,
		NetSavingsChange:   net.Sub(previousNet),
	}

	for id, totals := range byCategory {
		name := ""
		category, err := snap.Categories.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if category != nil {
			name = category.Name
		}
		summary.Categories = append(summary.Categories, CategorySummary{
			CategoryID:   id,
			CategoryName: name,
			Income:       totals.income,
			Expense:      totals.expense,
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		a, b := summary.Categories[i], summary.Categories[j]
		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}
		return uuidLess(a.CategoryID, b.CategoryID)
	})
	return summary, nil
}

type categoryTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// monthTotals folds every transaction of the calendar month into income
// and expense totals, overall and per category.
func monthTotals(ctx context.Context, snap *storage.Snapshot, year int, month time.Month) (decimal.Decimal, decimal.Decimal, map[uuid.UUID]categoryTotals, error) {
	rows, err := queryMonth(ctx, snap, year, month, nil)
	if err != nil {
		return decimal.Zero, decimal.Zero, nil, err
	}

	var income, expense decimal.Decimal
	byCategory := make(map[uuid.UUID]categoryTotals)
	for _, row := range rows {
		totals := byCategory[row.CategoryID]
		if row.Type == core.TransactionTypeIncome {
			income = income.Add(row.Amount)
			totals.income = totals.income.Add(row.Amount)
		} else {
			expense = expense.Add(row.Amount)
			totals.expense = totals.expense.Add(row.Amount)
		}
		byCategory[row.CategoryID] = totals
	}
	return income, expense, byCategory, nil
}

// monthExpenseByCategory folds the month's expense transactions into a
// per-category sum.
func monthExpenseByCategory(ctx context.Context, snap *storage.Snapshot, year int, month time.Month) (map[uuid.UUID]decimal.Decimal, error) {
	expenseType := core.TransactionTypeExpense
	rows, err := queryMonth(ctx, snap, year, month, &expenseType)
	if err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, row := range rows {
		sums[row.CategoryID] = sums[row.CategoryID].Add(row.Amount)
	}
	return sums, nil
}

func queryMonth(ctx context.Context, snap *storage.Snapshot, year int, month time.Month, transactionType *core.TransactionType) ([]*transaction.Transaction, error) {
	start, end := core.MonthRange(year, month)
	last := end.Add(-time.Nanosecond)
	return snap.Transactions.Query(ctx, &transaction.Filter{
		StartDate: &start,
		EndDate:   &last,
		Type:      transactionType,
	})
}

func uuidLess(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
