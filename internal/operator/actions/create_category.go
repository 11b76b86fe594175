package actions

import (
	"context"
	"strings"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
)

// CreateCategory inserts a category after checking the name-uniqueness
// rule inside the write transaction. Name is expected pre-trimmed;
// uniqueness compares the lowercased name.
type CreateCategory struct {
	Name  string
	Type  core.CategoryType
	Color string

	Result *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	exists, err := writer.Categories.NameExists(ctx, strings.ToLower(a.Name))
	if err != nil {
		return err
	}
	if exists {
		return core.NewConflict("Category name must be unique")
	}

	create := &category.Create{
		Name:  a.Name,
		Type:  a.Type,
		Color: a.Color,
	}
	id, err := writer.Categories.Insert(ctx, create)
	if uniqueViolation(err) {
		return core.NewConflict("Category name must be unique")
	}
	if err != nil {
		return err
	}

	a.Result = &category.Category{
		ID:    id,
		Name:  create.Name,
		Type:  create.Type,
		Color: create.Color,
	}
	return nil
}
