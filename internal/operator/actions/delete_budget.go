package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/storage"
)

// DeleteBudget removes a budget.
type DeleteBudget struct {
	ID uuid.UUID

	Deleted bool
}

func (a *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Budgets.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	a.Deleted = deleted
	return nil
}
