package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      core.CategoryType
	Color     string
	CreatedAt time.Time
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      row.Type,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}
}
