package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedAmount_IncomeIsPositive(t *testing.T) {
	amount := decimal.RequireFromString("42.50")

	got := SignedAmount(amount, TransactionTypeIncome)

	assert.True(t, got.Equal(amount))
}

func TestSignedAmount_ExpenseIsNegative(t *testing.T) {
	amount := decimal.RequireFromString("42.50")

	got := SignedAmount(amount, TransactionTypeExpense)

	assert.True(t, got.Equal(amount.Neg()))
}

func TestPercentage_RoundsHalfUpToTwoPlaces(t *testing.T) {
	// 2000 / 3000 * 100 = 66.666... -> 66.67
	got := Percentage(decimal.NewFromInt(2000), decimal.NewFromInt(3000))
	assert.Equal(t, "66.67", got.StringFixed(2))

	// Exact half rounds away from zero: 0.125 * 100 / 100 path.
	got = Percentage(decimal.RequireFromString("0.125"), decimal.NewFromInt(100))
	assert.Equal(t, "0.13", got.StringFixed(2))
}

func TestPercentage_ZeroWholeYieldsZero(t *testing.T) {
	got := Percentage(decimal.NewFromInt(500), decimal.Zero)

	assert.True(t, got.IsZero())
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TransactionTypeIncome.Valid())
	assert.True(t, TransactionTypeExpense.Valid())
	assert.False(t, TransactionType(9).Valid())
}
