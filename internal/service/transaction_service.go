package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

const defaultLimit = 20

// TransactionService is the ledger: the only writer of transaction
// records and, through them, of account balances. Every mutation runs as
// one atomic unit that keeps
//
//	balance == startingBalance + sum of signed amounts
//
// true for every account it touches.
type TransactionService struct {
	storage  storage.Store
	operator *operator.OperatorDelegator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store storage.Store, op *operator.OperatorDelegator) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// Create validates and persists a new transaction, applying its signed
// amount to the owning account.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (*Transaction, error) {
	if err := validateTransactionInput(in); err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		AccountID:   in.AccountID,
		CategoryID:  in.CategoryID,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromStorage(action.Result, action.AccountName, action.CategoryName), nil
}

// Update replaces all fields of an existing transaction, reconciling the
// balance of every account involved. A missing ID is reported as
// (nil, nil).
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, in TransactionInput) (*Transaction, error) {
	if err := validateTransactionInput(in); err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		ID:          id,
		AccountID:   in.AccountID,
		CategoryID:  in.CategoryID,
		Amount:      in.Amount,
		Type:        in.Type,
		Date:        in.Date,
		Description: in.Description,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	if action.NotFound {
		return nil, nil
	}
	return transactionFromStorage(action.Result, action.AccountName, action.CategoryName), nil
}

// Delete removes a transaction, backing its signed amount out of the
// owning account, and reports whether it existed.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}
	return !action.NotFound, nil
}

// List returns transactions matching the filter, newest first, enriched
// with account and category names from the same snapshot.
func (s *TransactionService) List(ctx context.Context, filter TransactionFilter) ([]Transaction, error) {
	take := filter.Take
	if take <= 0 {
		take = defaultLimit
	}

	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	storageFilter := transactionFilterToStorage(filter, take)
	rows, err := snap.Transactions.Query(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	accountNames, categoryNames, err := displayNames(ctx, snap)
	if err != nil {
		return nil, err
	}

	result := make([]Transaction, len(rows))
	for i, row := range rows {
		result[i] = *transactionFromStorage(row, accountNames[row.AccountID], categoryNames[row.CategoryID])
	}
	return result, nil
}

func validateTransactionInput(in TransactionInput) error {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return core.NewValidation("Amount must be greater than zero")
	}
	if !in.Type.Valid() {
		return core.NewValidation("Invalid transaction type")
	}
	return nil
}
