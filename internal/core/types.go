package core

import (
	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
// The amount itself is always positive; direction lives here.
type TransactionType int8

const (
	TransactionTypeIncome TransactionType = iota
	TransactionTypeExpense
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeIncome:
		return "income"
	case TransactionTypeExpense:
		return "expense"
	}
	return "unknown"
}

// Valid reports whether t is one of the defined transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// CategoryType mirrors TransactionType for categories.
type CategoryType int8

const (
	CategoryTypeIncome CategoryType = iota
	CategoryTypeExpense
)

// Valid reports whether c is one of the defined category types.
func (c CategoryType) Valid() bool {
	return c == CategoryTypeIncome || c == CategoryTypeExpense
}

// AccountType represents the kind of account.
type AccountType int8

const (
	AccountTypeChecking AccountType = iota
	AccountTypeSavings
	AccountTypeCash
	AccountTypeCreditCard
	AccountTypeInvestment
)

// BudgetStatus compares actual spend against the budgeted amount.
type BudgetStatus int8

const (
	BudgetStatusUnder BudgetStatus = iota
	BudgetStatusOn
	BudgetStatusOver
)

func (s BudgetStatus) String() string {
	switch s {
	case BudgetStatusUnder:
		return "under"
	case BudgetStatusOn:
		return "on"
	case BudgetStatusOver:
		return "over"
	}
	return "unknown"
}

// SignedAmount is the contribution of a transaction to its account's
// balance: +amount for income, -amount for expense.
func SignedAmount(amount decimal.Decimal, transactionType TransactionType) decimal.Decimal {
	if transactionType == TransactionTypeExpense {
		return amount.Neg()
	}
	return amount
}

// Percentage computes part/whole*100 rounded to two decimal places,
// rounding halves away from zero. A zero whole yields zero instead of a
// division fault.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(decimal.NewFromInt(100)).DivRound(whole, 2)
}
