package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// ListTransactionsBody is the request body for listing transactions.
// All fields are optional; absent fields leave the filter open.
type ListTransactionsBody struct {
	StartDate  string `json:"startDate,omitempty" format:"date-time" doc:"Inclusive lower bound on transaction date"`
	EndDate    string `json:"endDate,omitempty" format:"date-time" doc:"Inclusive upper bound on transaction date"`
	AccountID  string `json:"accountID,omitempty" doc:"Restrict to one account"`
	CategoryID string `json:"categoryID,omitempty" doc:"Restrict to one category"`
	Type       *int   `json:"type,omitempty" minimum:"0" maximum:"1" doc:"Restrict to one type: 0=Income, 1=Expense"`
	Skip       int    `json:"skip,omitempty" minimum:"0" doc:"Rows to skip after ordering"`
	Take       int    `json:"take,omitempty" minimum:"0" maximum:"100" doc:"Page size, defaults to 20"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing
// transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, date descending"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, filter service.TransactionFilter) ([]service.Transaction, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a filtered, paginated list of transactions ordered by date descending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input into a
// service filter.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{
		Skip: input.Body.Skip,
		Take: input.Body.Take,
	}

	if input.Body.StartDate != "" {
		start, err := time.Parse(time.RFC3339, input.Body.StartDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		filter.StartDate = &start
	}
	if input.Body.EndDate != "" {
		end, err := time.Parse(time.RFC3339, input.Body.EndDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		filter.EndDate = &end
	}
	if input.Body.AccountID != "" {
		accountID, err := uuid.FromString(input.Body.AccountID)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		filter.AccountID = &accountID
	}
	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
		}
		filter.CategoryID = &categoryID
	}
	if input.Body.Type != nil {
		transactionType := core.TransactionType(*input.Body.Type)
		if !transactionType.Valid() {
			return filter, huma.NewError(http.StatusBadRequest, "type must be 0 or 1", nil)
		}
		filter.Type = &transactionType
	}
	if filter.Skip < 0 {
		return filter, huma.NewError(http.StatusBadRequest, "skip must be non-negative", nil)
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.List(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i := range transactions {
		resp.Transactions[i] = FromService(&transactions[i])
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
