package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	AccountID    string `json:"accountID" doc:"Account UUID"`
	AccountName  string `json:"accountName" doc:"Account display name"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	Amount       string `json:"amount" doc:"Decimal amount, always positive"`
	Type         int    `json:"type" doc:"Transaction type: 0=Income, 1=Expense"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	Description  string `json:"description" doc:"Free-form description"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionBody carries the caller-supplied fields of a create or
// update request.
type TransactionBody struct {
	AccountID   string `json:"accountID" required:"true" doc:"Account UUID"`
	CategoryID  string `json:"categoryID" required:"true" doc:"Category UUID"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, greater than zero"`
	Type        int    `json:"type" minimum:"0" maximum:"1" doc:"Transaction type: 0=Income, 1=Expense"`
	Date        string `json:"date" doc:"RFC3339 transaction date, defaults to now"`
	Description string `json:"description,omitempty" doc:"Free-form description"`
}

// FromService converts a service-layer transaction to the API model.
func FromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		AccountID:    tx.AccountID.String(),
		AccountName:  tx.AccountName,
		CategoryID:   tx.CategoryID.String(),
		CategoryName: tx.CategoryName,
		Amount:       tx.Amount.String(),
		Type:         int(tx.Type),
		Date:         tx.Date.Format(time.RFC3339),
		Description:  tx.Description,
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
}

func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	accountID, err := uuid.FromString(body.AccountID)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	categoryID, err := uuid.FromString(body.CategoryID)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var date time.Time
	if body.Date != "" {
		date, err = time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	} else {
		date = time.Now().UTC()
	}

	return service.TransactionInput{
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        core.TransactionType(body.Type),
		Date:        date,
		Description: body.Description,
	}, nil
}
