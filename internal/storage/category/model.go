package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
)

// Category is a category record. Name keeps the caller's casing; the
// uniqueness rule compares the lowercased trimmed name.
type Category struct {
	ID        uuid.UUID         `db:"id"`
	Name      string            `db:"name"`
	Type      core.CategoryType `db:"type"`
	Color     string            `db:"color"`
	CreatedAt time.Time         `db:"created_at"`
}

// Create is the input for creating a new category.
type Create struct {
	Name  string
	Type  core.CategoryType
	Color string
}

// Update carries the full replacement field set for a category.
type Update struct {
	Name  string
	Type  core.CategoryType
	Color string
}

// Reader provides point-in-time reads of category records.
// A missing ID is reported as (nil, nil), never as an error.
type Reader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// NameExists reports whether any category's lowercased trimmed name
	// equals normalizedName.
	NameExists(ctx context.Context, normalizedName string) (bool, error)
	List(ctx context.Context) ([]*Category, error)
}

// Writer extends Reader with mutations, bound to one transaction.
type Writer interface {
	Reader
	Insert(ctx context.Context, create *Create) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *Update) error
	// Delete removes the category and reports whether a row existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
