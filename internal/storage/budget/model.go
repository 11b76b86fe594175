package budget

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget is a budget record. Month is always the first instant of its
// calendar month in UTC; callers normalize before writing.
type Budget struct {
	ID         uuid.UUID       `db:"id"`
	CategoryID uuid.UUID       `db:"category_id"`
	Month      time.Time       `db:"month"`
	Amount     decimal.Decimal `db:"amount"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Create is the input for creating a new budget.
type Create struct {
	CategoryID uuid.UUID
	Month      time.Time
	Amount     decimal.Decimal
}

// Update carries the full replacement field set for a budget.
type Update struct {
	CategoryID uuid.UUID
	Month      time.Time
	Amount     decimal.Decimal
}

// Reader provides point-in-time reads of budget records.
// A missing row is reported as (nil, nil), never as an error.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month time.Time) (*Budget, error)
	ListByMonth(ctx context.Context, month time.Time) ([]*Budget, error)
}

// Writer extends Reader with mutations, bound to one transaction.
type Writer interface {
	Reader
	Insert(ctx context.Context, create *Create) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *Update) error
	// Delete removes the budget and reports whether a row existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
