package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// CategoryExpense is one row of the dashboard's top-spenders ranking.
type CategoryExpense struct {
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	TotalExpense string `json:"totalExpense" doc:"Expense total for the month"`
}

// BudgetProgress pairs a month's budget with the spend realized so far.
type BudgetProgress struct {
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	Budgeted     string `json:"budgeted" doc:"Budgeted decimal amount"`
	Actual       string `json:"actual" doc:"Realized expense total"`
	OverBudget   bool   `json:"overBudget" doc:"True when actual exceeds budgeted"`
}

// DashboardResponseBody is the dashboard response body.
type DashboardResponseBody struct {
	TotalBalance         string                    `json:"totalBalance" doc:"Sum of all account balances, not month-scoped"`
	MonthIncome          string                    `json:"monthIncome" doc:"Income total for the month"`
	MonthExpense         string                    `json:"monthExpense" doc:"Expense total for the month"`
	TopExpenseCategories []CategoryExpense         `json:"topExpenseCategories" doc:"Categories ranked by month expense, descending"`
	BudgetProgress       []BudgetProgress          `json:"budgetProgress" doc:"One row per budget in the month"`
	RecentTransactions   []transaction.Transaction `json:"recentTransactions" doc:"Latest transactions across all accounts, not month-scoped"`
}

// GetDashboardInput is the Huma input for the dashboard.
type GetDashboardInput struct {
	Year  int `query:"year" minimum:"1" doc:"Calendar year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// GetDashboardOutput is the Huma output for the dashboard.
type GetDashboardOutput struct {
	Body DashboardResponseBody
}

// dashboardSnapshotter is the interface for building the dashboard.
type dashboardSnapshotter interface {
	Snapshot(ctx context.Context, year int, month time.Month) (*service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardSnapshotter
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardSnapshotter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard snapshot",
		Description: "Combines balances, month aggregates, budget progress, and recent activity in one view.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	if input.Month < 1 || input.Month > 12 {
		return nil, huma.NewError(http.StatusBadRequest, "month must be 1-12", nil)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	snapshot, err := h.DashboardService.Snapshot(ctx, input.Year, time.Month(input.Month))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to build dashboard")
	}

	if logData != nil {
		logData.AddData("recentTransactionCount", len(snapshot.RecentTransactions))
	}

	return &GetDashboardOutput{Body: fromService(snapshot)}, nil
}

func fromService(d *service.Dashboard) DashboardResponseBody {
	body := DashboardResponseBody{
		TotalBalance:         d.TotalBalance.String(),
		MonthIncome:          d.MonthIncome.String(),
		MonthExpense:         d.MonthExpense.String(),
		TopExpenseCategories: make([]CategoryExpense, len(d.TopExpenseCategories)),
		BudgetProgress:       make([]BudgetProgress, len(d.BudgetProgress)),
		RecentTransactions:   make([]transaction.Transaction, len(d.RecentTransactions)),
	}
	for i, c := range d.TopExpenseCategories {
		body.TopExpenseCategories[i] = CategoryExpense{
			CategoryID:   c.CategoryID.String(),
			CategoryName: c.CategoryName,
			TotalExpense: c.TotalExpense.String(),
		}
	}
	for i, b := range d.BudgetProgress {
		body.BudgetProgress[i] = BudgetProgress{
			CategoryID:   b.CategoryID.String(),
			CategoryName: b.CategoryName,
			Budgeted:     b.Budgeted.String(),
			Actual:       b.Actual.String(),
			OverBudget:   b.OverBudget,
		}
	}
	for i := range d.RecentTransactions {
		body.RecentTransactions[i] = transaction.FromService(&d.RecentTransactions[i])
	}
	return body
}
