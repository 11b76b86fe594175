package account

import (
	"time"

	"github.com/carson-networks/budget-tracker/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID              string `json:"id" doc:"Account UUID"`
	Name            string `json:"name" doc:"Account name"`
	Type            int    `json:"type" doc:"Account type: 0=Checking, 1=Savings, 2=Cash, 3=Credit Card, 4=Investment"`
	Balance         string `json:"balance" doc:"Current decimal balance"`
	StartingBalance string `json:"startingBalance" doc:"Decimal balance at account creation"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(acc *service.Account) Account {
	return Account{
		ID:              acc.ID.String(),
		Name:            acc.Name,
		Type:            int(acc.Type),
		Balance:         acc.Balance.String(),
		StartingBalance: acc.StartingBalance.String(),
		CreatedAt:       acc.CreatedAt.Format(time.RFC3339),
	}
}
