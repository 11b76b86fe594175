package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// displayNames loads account and category name lookup maps from one
// snapshot, so the names come from the same cut as the rows they label.
func displayNames(ctx context.Context, snap *storage.Snapshot) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	accounts, err := snap.Accounts.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := snap.Categories.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	return accountNames, categoryNames, nil
}

func transactionFilterToStorage(filter TransactionFilter, take int) *transaction.Filter {
	return &transaction.Filter{
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		AccountID:  filter.AccountID,
		CategoryID: filter.CategoryID,
		Type:       filter.Type,
		Offset:     filter.Skip,
		Limit:      take,
	}
}
