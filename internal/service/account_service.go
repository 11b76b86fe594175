package service

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// AccountService creates and lists accounts. It never moves an
// account's balance: only the ledger does that, as a side effect of
// transaction writes.
type AccountService struct {
	storage  storage.Store
	operator *operator.OperatorDelegator
}

// NewAccountService creates a new AccountService.
func NewAccountService(store storage.Store, op *operator.OperatorDelegator) *AccountService {
	return &AccountService{storage: store, operator: op}
}

// Create persists a new account with its starting balance.
func (s *AccountService) Create(ctx context.Context, name string, accountType core.AccountType, startingBalance decimal.Decimal) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, core.NewValidation("Name is required")
	}

	action := &actions.CreateAccount{
		Name:            name,
		Type:            accountType,
		StartingBalance: startingBalance,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Result), nil
}

// Get retrieves an account by ID; a missing ID is reported as (nil, nil).
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	row, err := snap.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return accountFromStorage(row), nil
}

// List returns all accounts ordered by name.
func (s *AccountService) List(ctx context.Context) ([]Account, error) {
	snap, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	rows, err := snap.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Account, len(rows))
	for i, row := range rows {
		result[i] = *accountFromStorage(row)
	}
	return result, nil
}
