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

type ledgerFixture struct {
	svc      *Service
	account  *Account
	salary   *Category
	expenses *Category
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	svc := newTestService(t)
	ctx := context.Background()

	account, err := svc.Account.Create(ctx, "Checking", core.AccountTypeChecking, decimal.RequireFromString("100"))
	require.NoError(t, err)
	salary, err := svc.Category.Create(ctx, "Salary", core.CategoryTypeIncome, "")
	require.NoError(t, err)
	expenses, err := svc.Category.Create(ctx, "Groceries", core.CategoryTypeExpense, "")
	require.NoError(t, err)

	return &ledgerFixture{svc: svc, account: account, salary: salary, expenses: expenses}
}

func (f *ledgerFixture) balance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	account, err := f.svc.Account.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, account)
	return account.Balance
}

func TestTransactionCreate_AppliesSignedAmount(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:   f.account.ID,
		CategoryID:  f.salary.ID,
		Amount:      decimal.RequireFromString("50"),
		Type:        core.TransactionTypeIncome,
		Date:        time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		Description: "paycheck",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Checking", created.AccountName)
	assert.Equal(t, "Salary", created.CategoryName)
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("150")))

	_, err = f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("30"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("120")))
}

func TestTransactionCreate_Validation(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.Zero,
		Type:       core.TransactionTypeExpense,
		Date:       time.Now(),
	})
	assert.True(t, core.IsValidation(err))

	_, err = f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("10"),
		Type:       core.TransactionType(7),
		Date:       time.Now(),
	})
	assert.True(t, core.IsValidation(err))
}

func TestTransactionCreate_MissingReferences(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  uuid.Must(uuid.NewV4()),
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("10"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Now(),
	})
	assert.True(t, core.IsValidation(err))

	_, err = f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.RequireFromString("10"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Now(),
	})
	assert.True(t, core.IsValidation(err))

	// A failed create must leave the balance untouched.
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("100")))
}

func TestTransactionUpdate_SameAccount(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("30"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("70")))

	// Flipping an expense to an income re-derives the balance from the
	// old and new signed amounts.
	updated, err := f.svc.Transaction.Update(ctx, created.ID, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.salary.ID,
		Amount:     decimal.RequireFromString("30"),
		Type:       core.TransactionTypeIncome,
		Date:       created.Date,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, core.TransactionTypeIncome, updated.Type)
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("130")))
}

func TestTransactionUpdate_RepeatedUpdatesRereadCommittedRow(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("10"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("90")))

	// Each update must derive its delta from the row as committed by the
	// previous one, so only the last amount is reflected in the balance.
	for _, amount := range []string{"20", "30"} {
		_, err := f.svc.Transaction.Update(ctx, created.ID, TransactionInput{
			AccountID:  f.account.ID,
			CategoryID: f.expenses.ID,
			Amount:     decimal.RequireFromString(amount),
			Type:       core.TransactionTypeExpense,
			Date:       created.Date,
		})
		require.NoError(t, err)
	}
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("70")))

	// Deleting reverses the final amount, not any earlier one.
	deleted, err := f.svc.Transaction.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("100")))
}

func TestTransactionUpdate_MovesAccounts(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	savings, err := f.svc.Account.Create(ctx, "Savings", core.AccountTypeSavings, decimal.RequireFromString("500"))
	require.NoError(t, err)

	created, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("40"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("60")))

	updated, err := f.svc.Transaction.Update(ctx, created.ID, TransactionInput{
		AccountID:  savings.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("40"),
		Type:       core.TransactionTypeExpense,
		Date:       created.Date,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// The old account gets the delta backed out, the new one absorbs it.
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("100")))
	assert.True(t, f.balance(t, savings.ID).Equal(decimal.RequireFromString("460")))
}

func TestTransactionUpdate_NotFound(t *testing.T) {
	f := newLedgerFixture(t)

	updated, err := f.svc.Transaction.Update(context.Background(), uuid.Must(uuid.NewV4()), TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("10"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Now(),
	})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestTransactionDelete_ReversesBalance(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	created, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("25"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("75")))

	deleted, err := f.svc.Transaction.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, f.balance(t, f.account.ID).Equal(decimal.RequireFromString("100")))

	deleted, err = f.svc.Transaction.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTransactionList_OrderingAndPagination(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := f.svc.Transaction.Create(ctx, TransactionInput{
			AccountID:  f.account.ID,
			CategoryID: f.expenses.ID,
			Amount:     decimal.RequireFromString("1"),
			Type:       core.TransactionTypeExpense,
			Date:       d,
		})
		require.NoError(t, err)
	}

	all, err := f.svc.Transaction.List(ctx, TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	// Newest first, and equal dates in a stable order.
	assert.Equal(t, dates[3], all[0].Date)
	assert.Equal(t, dates[0], all[3].Date)
	assert.True(t, !all[1].Date.Before(all[2].Date))

	page, err := f.svc.Transaction.List(ctx, TransactionFilter{Skip: 1, Take: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[1].ID, page[0].ID)
	assert.Equal(t, all[2].ID, page[1].ID)
}

func TestTransactionList_Filters(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	_, err := f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.salary.ID,
		Amount:     decimal.RequireFromString("100"),
		Type:       core.TransactionTypeIncome,
		Date:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = f.svc.Transaction.Create(ctx, TransactionInput{
		AccountID:  f.account.ID,
		CategoryID: f.expenses.ID,
		Amount:     decimal.RequireFromString("20"),
		Type:       core.TransactionTypeExpense,
		Date:       time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	expenseType := core.TransactionTypeExpense
	expenses, err := f.svc.Transaction.List(ctx, TransactionFilter{Type: &expenseType})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Groceries", expenses[0].CategoryName)

	// Date bounds are inclusive on both ends.
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)
	june, err := f.svc.Transaction.List(ctx, TransactionFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, june, 1)
	assert.Equal(t, core.TransactionTypeIncome, june[0].Type)

	categoryID := f.salary.ID
	byCategory, err := f.svc.Transaction.List(ctx, TransactionFilter{CategoryID: &categoryID})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}
