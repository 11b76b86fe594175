package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// CreateTransaction inserts a transaction and applies its signed amount
// to the owning account's balance, atomically. The account row is locked
// first so concurrent deltas against the same account serialize.
type CreateTransaction struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        core.TransactionType
	Date        time.Time
	Description string

	Result       *transaction.Transaction
	AccountName  string
	CategoryName string
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByIDForUpdate(ctx, a.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return core.NewValidation("Account not found")
	}

	category, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return core.NewValidation("Category not found")
	}

	create := &transaction.Create{
		AccountID:   a.AccountID,
		CategoryID:  a.CategoryID,
		Amount:      a.Amount,
		Type:        a.Type,
		Date:        a.Date.UTC(),
		Description: a.Description,
	}
	id, err := writer.Transactions.Insert(ctx, create)
	if err != nil {
		return err
	}

	delta := core.SignedAmount(a.Amount, a.Type)
	if err := writer.Accounts.UpdateBalance(ctx, a.AccountID, account.Balance.Add(delta)); err != nil {
		return err
	}

	a.Result = &transaction.Transaction{
		ID:          id,
		AccountID:   create.AccountID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        create.Type,
		Date:        create.Date,
		Description: create.Description,
	}
	a.AccountName = account.Name
	a.CategoryName = category.Name
	return nil
}
