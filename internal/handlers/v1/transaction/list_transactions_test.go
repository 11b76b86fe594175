package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-tracker/internal/core"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context, filter service.TransactionFilter) ([]service.Transaction, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_Empty(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{},
	}

	filter, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
	assert.Nil(t, filter.AccountID)
	assert.Nil(t, filter.CategoryID)
	assert.Nil(t, filter.Type)
	assert.Equal(t, 0, filter.Skip)
	assert.Equal(t, 0, filter.Take)
}

func TestParseListTransactionsInput_AllFields(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	expenseType := 1

	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			StartDate:  "2025-06-01T00:00:00Z",
			EndDate:    "2025-06-30T23:59:59Z",
			AccountID:  accountID.String(),
			CategoryID: categoryID.String(),
			Type:       &expenseType,
			Skip:       40,
			Take:       10,
		},
	}

	filter, err := parseListTransactionsInput(input)
	assert.NoError(t, err)

	expectedStart, _ := time.Parse(time.RFC3339, "2025-06-01T00:00:00Z")
	assert.NotNil(t, filter.StartDate)
	assert.Equal(t, expectedStart, *filter.StartDate)
	assert.NotNil(t, filter.EndDate)
	assert.Equal(t, accountID, *filter.AccountID)
	assert.Equal(t, categoryID, *filter.CategoryID)
	assert.Equal(t, core.TransactionTypeExpense, *filter.Type)
	assert.Equal(t, 40, filter.Skip)
	assert.Equal(t, 10, filter.Take)
}

func TestParseListTransactionsInput_InvalidStartDate(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{StartDate: "not-a-date"},
	}

	_, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

func TestParseListTransactionsInput_InvalidAccountID(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{AccountID: "not-a-uuid"},
	}

	_, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

func TestParseListTransactionsInput_InvalidType(t *testing.T) {
	badType := 7
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{Type: &badType},
	}

	_, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, service.TransactionFilter{}).
		Return([]service.Transaction{
			{
				ID:           txID,
				AccountID:    uuid.Must(uuid.NewV4()),
				AccountName:  "Checking",
				CategoryID:   uuid.Must(uuid.NewV4()),
				CategoryName: "Food",
				Amount:       decimal.RequireFromString("10.00"),
				Type:         core.TransactionTypeExpense,
				Date:         now,
				Description:  "Coffee",
				CreatedAt:    now,
			},
		}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, txID.String(), body.Transactions[0].ID)
	assert.Equal(t, "Checking", body.Transactions[0].AccountName)
	assert.Equal(t, "Food", body.Transactions[0].CategoryName)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("List", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
