package actions

import (
	"bytes"
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/account"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// UpdateTransaction rewrites a transaction's fields and reconciles the
// affected account balances in the same unit of work. Staying on the
// same account applies (newDelta - oldDelta) to it; moving accounts
// removes oldDelta from the old account and adds newDelta to the new
// one. The transaction row is locked before the balance math so a
// concurrent update or delete of the same record sees the committed
// amount, and accounts are locked in ascending ID order so two
// concurrent moves cannot deadlock.
type UpdateTransaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        core.TransactionType
	Date        time.Time
	Description string

	NotFound     bool
	Result       *transaction.Transaction
	AccountName  string
	CategoryName string
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		a.NotFound = true
		return nil
	}

	category, err := writer.Categories.FindByID(ctx, a.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return core.NewValidation("Category not found")
	}

	oldDelta := core.SignedAmount(existing.Amount, existing.Type)
	newDelta := core.SignedAmount(a.Amount, a.Type)

	if existing.AccountID == a.AccountID {
		acct, err := writer.Accounts.FindByIDForUpdate(ctx, a.AccountID)
		if err != nil {
			return err
		}
		if acct == nil {
			return core.NewValidation("Account not found")
		}
		if err := writer.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Add(newDelta.Sub(oldDelta))); err != nil {
			return err
		}
		a.AccountName = acct.Name
	} else {
		oldAcct, newAcct, err := lockPair(ctx, writer, existing.AccountID, a.AccountID)
		if err != nil {
			return err
		}
		if err := writer.Accounts.UpdateBalance(ctx, oldAcct.ID, oldAcct.Balance.Sub(oldDelta)); err != nil {
			return err
		}
		if err := writer.Accounts.UpdateBalance(ctx, newAcct.ID, newAcct.Balance.Add(newDelta)); err != nil {
			return err
		}
		a.AccountName = newAcct.Name
	}

	update := &transaction.Update{
		AccountID:   a.AccountID,
		CategoryID:  a.CategoryID,
		Amount:      a.Amount,
		Type:        a.Type,
		Date:        a.Date.UTC(),
		Description: a.Description,
	}
	if err := writer.Transactions.Update(ctx, a.ID, update); err != nil {
		return err
	}

	a.Result = &transaction.Transaction{
		ID:          a.ID,
		AccountID:   update.AccountID,
		CategoryID:  update.CategoryID,
		Amount:      update.Amount,
		Type:        update.Type,
		Date:        update.Date,
		Description: update.Description,
		CreatedAt:   existing.CreatedAt,
	}
	a.CategoryName = category.Name
	return nil
}

// lockPair locks two distinct accounts in ascending ID order and returns
// them as (old, new).
func lockPair(ctx context.Context, writer *storage.Writer, oldID, newID uuid.UUID) (*account.Account, *account.Account, error) {
	firstID, secondID := oldID, newID
	if bytes.Compare(secondID[:], firstID[:]) < 0 {
		firstID, secondID = secondID, firstID
	}

	first, err := writer.Accounts.FindByIDForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := writer.Accounts.FindByIDForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}
	if first == nil || second == nil {
		return nil, nil, core.NewValidation("Account not found")
	}

	if first.ID == oldID {
		return first, second, nil
	}
	return second, first, nil
}
