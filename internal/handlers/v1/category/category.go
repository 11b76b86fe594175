package category

import (
	"time"

	"github.com/carson-networks/budget-tracker/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	Type      int    `json:"type" doc:"Category type: 0=Income, 1=Expense"`
	Color     string `json:"color" doc:"Display color, e.g. '#33B679'"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(cat *service.Category) Category {
	return Category{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      int(cat.Type),
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt.Format(time.RFC3339),
	}
}
