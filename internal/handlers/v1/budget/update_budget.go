package budget

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// UpdateBudgetBody is the request body for updating a budget.
type UpdateBudgetBody struct {
	CategoryID string `json:"categoryID" required:"true" doc:"Category UUID"`
	Month      string `json:"month" required:"true" doc:"Budget month, formatted YYYY-MM"`
	Amount     string `json:"amount" required:"true" doc:"Budgeted decimal amount, greater than zero"`
}

// UpdateBudgetInput is the Huma input for updating a budget.
type UpdateBudgetInput struct {
	ID   string `path:"id" doc:"Budget UUID"`
	Body UpdateBudgetBody
}

// UpdateBudgetOutput is the response for updating a budget.
type UpdateBudgetOutput struct {
	Body Budget
}

// budgetUpdater is the interface for updating budgets.
type budgetUpdater interface {
	Update(ctx context.Context, id, categoryID uuid.UUID, month time.Time, amount decimal.Decimal) (*service.Budget, error)
}

// UpdateBudgetHandler handles PUT /v1/budget/{id}.
type UpdateBudgetHandler struct {
	BudgetService budgetUpdater
}

// NewUpdateBudgetHandler creates a new UpdateBudgetHandler.
func NewUpdateBudgetHandler(svc budgetUpdater) *UpdateBudgetHandler {
	return &UpdateBudgetHandler{BudgetService: svc}
}

// Register registers the update budget endpoint with the Huma API.
func (h *UpdateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget/{id}",
		Summary:     "Update a budget",
		Description: "Updates a budget's category, month, and amount.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *UpdateBudgetHandler) handle(ctx context.Context, input *UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid budget id", err)
	}
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	month, err := parseMonth(input.Body.Month)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateBudgetMs")
	}
	updated, err := h.BudgetService.Update(ctx, id, categoryID, month, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to update budget")
	}
	if updated == nil {
		return nil, apierror.NotFound("budget not found")
	}

	return &UpdateBudgetOutput{Body: fromService(updated)}, nil
}
