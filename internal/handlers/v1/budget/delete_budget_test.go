package budget

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockBudgetDeleter struct {
	mock.Mock
}

func (m *mockBudgetDeleter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newDeleteTestAPI(t *testing.T, svc budgetDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteBudgetHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteBudget(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBudgetDeleter)
	mockSvc.On("Delete", mock.Anything, budgetID).Return(true, nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/budget/" + budgetID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteBudget_Missing(t *testing.T) {
	budgetID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockBudgetDeleter)
	mockSvc.On("Delete", mock.Anything, budgetID).Return(false, nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/budget/" + budgetID.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteBudget_BadID(t *testing.T) {
	mockSvc := new(mockBudgetDeleter)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/budget/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Delete")
}
