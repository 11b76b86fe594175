package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer, enriched
// with the account and category display names.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	AccountName  string
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Type         core.TransactionType
	Date         time.Time
	Description  string
	CreatedAt    time.Time
}

// TransactionInput carries the caller-supplied fields of a transaction
// create or update.
type TransactionInput struct {
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        core.TransactionType
	Date        time.Time
	Description string
}

// TransactionFilter constrains List. Nil pointer fields are ignored;
// StartDate and EndDate are inclusive. Skip/Take paginate after ordering
// by date descending (ID descending on equal dates).
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *core.TransactionType
	Skip       int
	Take       int
}

func transactionFromStorage(row *transaction.Transaction, accountName, categoryName string) *Transaction {
	return &Transaction{
		ID:           row.ID,
		AccountID:    row.AccountID,
		AccountName:  accountName,
		CategoryID:   row.CategoryID,
		CategoryName: categoryName,
		Amount:       row.Amount,
		Type:         row.Type,
		Date:         row.Date,
		Description:  row.Description,
		CreatedAt:    row.CreatedAt,
	}
}
