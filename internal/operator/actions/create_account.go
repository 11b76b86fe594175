package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/account"
)

// CreateAccount inserts an account. The starting balance seeds both the
// current and starting balance; only transaction writes move the current
// balance afterwards.
type CreateAccount struct {
	Name            string
	Type            core.AccountType
	StartingBalance decimal.Decimal

	Result *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	create := &account.Create{
		Name:            a.Name,
		Type:            a.Type,
		StartingBalance: a.StartingBalance,
	}
	id, err := writer.Accounts.Insert(ctx, create)
	if err != nil {
		return err
	}

	a.Result = &account.Account{
		ID:              id,
		Name:            create.Name,
		Type:            create.Type,
		Balance:         create.StartingBalance,
		StartingBalance: create.StartingBalance,
	}
	return nil
}
