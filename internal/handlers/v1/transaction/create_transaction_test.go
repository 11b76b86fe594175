package transaction

import (
	"context"
	"encoding/json"
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

type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) Create(ctx context.Context, in service.TransactionInput) (*service.Transaction, error) {
	args := m.Called(ctx, in)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateTransaction(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.AccountID == accountID &&
			in.CategoryID == categoryID &&
			in.Amount.Equal(decimal.RequireFromString("10.50")) &&
			in.Type == core.TransactionTypeExpense
	})).Return(&service.Transaction{
		ID:           txID,
		AccountID:    accountID,
		AccountName:  "Checking",
		CategoryID:   categoryID,
		CategoryName: "Food",
		Amount:       decimal.RequireFromString("10.50"),
		Type:         core.TransactionTypeExpense,
		Date:         now,
		CreatedAt:    now,
	}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		AccountID:  accountID.String(),
		CategoryID: categoryID.String(),
		Amount:     "10.50",
		Type:       1,
		Date:       now.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "Checking", body.AccountName)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_BadAmount(t *testing.T) {
	mockSvc := new(mockTransactionCreator)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "ten dollars",
		Type:       1,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestHTTP_CreateTransaction_ValidationErrorMapsTo422(t *testing.T) {
	mockSvc := new(mockTransactionCreator)
	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return(nil, core.NewValidation("Account not found"))

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", TransactionBody{
		AccountID:  uuid.Must(uuid.NewV4()).String(),
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "10.00",
		Type:       1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertExpectations(t)
}
