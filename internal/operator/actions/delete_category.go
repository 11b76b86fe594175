package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/storage"
)

// DeleteCategory removes a category. Transactions and budgets that still
// reference it are left to the persistence layer's policy.
type DeleteCategory struct {
	ID uuid.UUID

	Deleted bool
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Categories.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
