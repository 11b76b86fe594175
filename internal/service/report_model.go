package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
)

// BudgetVsActualRow compares one month's budget for a category against
// the expense total actually realized in that category.
type BudgetVsActualRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	Budgeted     decimal.Decimal
	Actual       decimal.Decimal
	Difference   decimal.Decimal
	Percentage   decimal.Decimal
	Status       core.BudgetStatus
}

// BudgetVsActualReport is the month-level budget-vs-actual aggregation.
type BudgetVsActualReport struct {
	Year            int
	Month           time.Month
	Categories      []BudgetVsActualRow
	TotalBudgeted   decimal.Decimal
	TotalActual     decimal.Decimal
	TotalDifference decimal.Decimal
}

// CategorySummary is the income and expense realized in one category
// during the report month.
type CategorySummary struct {
	CategoryID   uuid.UUID
	CategoryName string
	Income       decimal.Decimal
	Expense      decimal.Decimal
}

// MonthlySummary aggregates one calendar month of activity plus the
// trend against the previous month.
type MonthlySummary struct {
	Year               int
	Month              time.Month
	TotalIncome        decimal.Decimal
	TotalExpense       decimal.Decimal
	NetSavings         decimal.Decimal
	SavingsRate        decimal.Decimal
	PreviousNetSavings decimal.Decimal
	NetSavingsChange   decimal.Decimal
	Categories         []CategorySummary
}

// CategoryExpense is a category's expense total for the dashboard's
// top-spenders ranking.
type CategoryExpense struct {
	CategoryID   uuid.UUID
	CategoryName string
	TotalExpense decimal.Decimal
}

// BudgetProgress pairs a month's budget with the spend realized so far.
type BudgetProgress struct {
	CategoryID   uuid.UUID
	CategoryName string
	Budgeted     decimal.Decimal
	Actual       decimal.Decimal
	OverBudget   bool
}

// Dashboard is a single read-only snapshot combining current balances
// with the month's income, expense, budgets, and recent activity.
type Dashboard struct {
	TotalBalance         decimal.Decimal
	MonthIncome          decimal.Decimal
	MonthExpense         decimal.Decimal
	TopExpenseCategories []CategoryExpense
	BudgetProgress       []BudgetProgress
	RecentTransactions   []Transaction
}
