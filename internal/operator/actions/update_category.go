package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
)

// UpdateCategory replaces a category's fields. The uniqueness check only
// re-runs when the normalized name actually changes, so a case-only
// rename of the same record never collides with itself.
type UpdateCategory struct {
	ID    uuid.UUID
	Name  string
	Type  core.CategoryType
	Color string

	NotFound bool
	Result   *category.Category
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Categories.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		a.NotFound = true
		return nil
	}

	normalized := strings.ToLower(a.Name)
	if normalized != strings.ToLower(existing.Name) {
		exists, err := writer.Categories.NameExists(ctx, normalized)
		if err != nil {
			return err
		}
		if exists {
			return core.NewConflict("Category name must be unique")
		}
	}

	update := &category.Update{
		Name:  a.Name,
		Type:  a.Type,
		Color: a.Color,
	}
	if err := writer.Categories.Update(ctx, a.ID, update); err != nil {
		if uniqueViolation(err) {
			return core.NewConflict("Category name must be unique")
		}
		return err
	}

	a.Result = &category.Category{
		ID:        a.ID,
		Name:      update.Name,
		Type:      update.Type,
		Color:     update.Color,
		CreatedAt: existing.CreatedAt,
	}
	return nil
}
