package budget

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/service"
)

// monthLayout is the wire format for budget months.
const monthLayout = "2006-01"

// Budget is the API response model for a budget.
type Budget struct {
	ID           string `json:"id" doc:"Budget UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	Month        string `json:"month" doc:"Budget month, formatted YYYY-MM"`
	Amount       string `json:"amount" doc:"Budgeted decimal amount"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(b *service.Budget) Budget {
	return Budget{
		ID:           b.ID.String(),
		CategoryID:   b.CategoryID.String(),
		CategoryName: b.CategoryName,
		Month:        b.Month.Format(monthLayout),
		Amount:       b.Amount.String(),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func parseMonth(value string) (time.Time, error) {
	month, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid month, expected YYYY-MM", err)
	}
	return month, nil
}
