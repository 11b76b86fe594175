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

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID string `json:"categoryID" required:"true" doc:"Category UUID"`
	Month      string `json:"month" required:"true" doc:"Budget month, formatted YYYY-MM"`
	Amount     string `json:"amount" required:"true" doc:"Budgeted decimal amount, greater than zero"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetOutput is the response for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   Budget
}

// budgetCreator is the interface for creating budgets.
type budgetCreator interface {
	Create(ctx context.Context, categoryID uuid.UUID, month time.Time, amount decimal.Decimal) (*service.Budget, error)
}

// CreateBudgetHandler handles POST /v1/budget.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-budget",
		Method:      http.MethodPost,
		Path:        "/v1/budget",
		Summary:     "Create a budget",
		Description: "Creates a budget for a category and month. One budget per category per month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseCreateBudgetInput(input *CreateBudgetInput) (uuid.UUID, time.Time, decimal.Decimal, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return uuid.Nil, time.Time{}, decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	month, err := parseMonth(input.Body.Month)
	if err != nil {
		return uuid.Nil, time.Time{}, decimal.Zero, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return uuid.Nil, time.Time{}, decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return categoryID, month, amount, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	categoryID, month, amount, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	created, err := h.BudgetService.Create(ctx, categoryID, month, amount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to create budget")
	}

	if logData != nil {
		logData.AddData("budgetID", created.ID.String())
	}

	return &CreateBudgetOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}
