package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
)

// Transaction is a transaction record. Amount is always positive; the
// direction is carried by Type.
type Transaction struct {
	ID          uuid.UUID            `db:"id"`
	AccountID   uuid.UUID            `db:"account_id"`
	CategoryID  uuid.UUID            `db:"category_id"`
	Amount      decimal.Decimal      `db:"amount"`
	Type        core.TransactionType `db:"type"`
	Date        time.Time            `db:"transaction_date"`
	Description string               `db:"description"`
	CreatedAt   time.Time            `db:"created_at"`
}

// Create is the input for creating a new transaction.
type Create struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        core.TransactionType
	Date        time.Time
	Description string
}

// Update carries the full replacement field set for a transaction.
type Update struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        core.TransactionType
	Date        time.Time
	Description string
}

// Filter constrains a transaction query. Nil pointer fields are ignored.
// StartDate and EndDate are both inclusive. Results are ordered by date
// descending with ID descending as the tie-break; Offset and Limit apply
// after ordering. A zero Limit means no limit.
type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *core.TransactionType
	Offset     int
	Limit      int
}

// Reader provides point-in-time reads of transaction records.
// A missing ID is reported as (nil, nil), never as an error.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Query(ctx context.Context, filter *Filter) ([]*Transaction, error)
}

// Writer extends Reader with mutations, bound to one transaction.
type Writer interface {
	Reader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *Create) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *Update) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
