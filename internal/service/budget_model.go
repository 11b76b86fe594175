package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/storage/budget"
)

// Budget represents a budget in the service layer. CategoryName is
// resolved at write/read time for display.
type Budget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Month        time.Time
	Amount       decimal.Decimal
	CreatedAt    time.Time
}

func budgetFromStorage(row *budget.Budget, categoryName string) *Budget {
	return &Budget{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: categoryName,
		Month:        row.Month,
		Amount:       row.Amount,
		CreatedAt:    row.CreatedAt,
	}
}
