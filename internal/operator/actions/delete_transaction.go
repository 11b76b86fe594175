package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// DeleteTransaction removes a transaction and backs its signed amount
// out of the owning account's balance, atomically. The row is locked
// first so a concurrent update cannot change the amount being reversed.
type DeleteTransaction struct {
	ID uuid.UUID

	NotFound bool
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		a.NotFound = true
		return nil
	}

	acct, err := writer.Accounts.FindByIDForUpdate(ctx, existing.AccountID)
	if err != nil {
		return err
	}
	if acct != nil {
		delta := core.SignedAmount(existing.Amount, existing.Type)
		if err := writer.Accounts.UpdateBalance(ctx, acct.ID, acct.Balance.Sub(delta)); err != nil {
			return err
		}
	}

	deleted, err := writer.Transactions.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		// The row was read earlier in this transaction, so it must still
		// be deletable; roll back the balance write rather than commit a
		// half-applied unit.
		return errors.New("transaction disappeared during delete")
	}
	return nil
}
