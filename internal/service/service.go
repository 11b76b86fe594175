package service

import (
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Budget      *BudgetService
	Transaction *TransactionService
	Report      *ReportService
	Dashboard   *DashboardService
}

// NewService creates a new Service. Mutations run through the operator;
// reads go straight to the store.
func NewService(store storage.Store, op *operator.OperatorDelegator) *Service {
	return &Service{
		Account:     NewAccountService(store, op),
		Category:    NewCategoryService(store, op),
		Budget:      NewBudgetService(store, op),
		Transaction: NewTransactionService(store, op),
		Report:      NewReportService(store),
		Dashboard:   NewDashboardService(store),
	}
}
