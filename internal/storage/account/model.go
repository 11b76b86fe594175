package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
)

// Account is an account record. Balance is only ever mutated alongside a
// transaction write; StartingBalance is fixed at creation.
type Account struct {
	ID              uuid.UUID        `db:"id"`
	Name            string           `db:"name"`
	Type            core.AccountType `db:"type"`
	Balance         decimal.Decimal  `db:"balance"`
	StartingBalance decimal.Decimal  `db:"starting_balance"`
	CreatedAt       time.Time        `db:"created_at"`
}

// Create is the input for creating a new account.
type Create struct {
	Name            string
	Type            core.AccountType
	StartingBalance decimal.Decimal
}

// Reader provides point-in-time reads of account records.
// A missing ID is reported as (nil, nil), never as an error.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
}

// Writer extends Reader with mutations, bound to one transaction.
// FindByIDForUpdate takes a row lock so concurrent balance deltas against
// the same account serialize.
type Writer interface {
	Reader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error)
	Insert(ctx context.Context, create *Create) (uuid.UUID, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}
