package report

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-tracker/internal/service"
)

type mockMonthlySummaryReporter struct {
	mock.Mock
}

func (m *mockMonthlySummaryReporter) MonthlySummary(ctx context.Context, year int, month time.Month) (*service.MonthlySummary, error) {
	args := m.Called(ctx, year, month)
	summary, _ := args.Get(0).(*service.MonthlySummary)
	return summary, args.Error(1)
}

func newMonthlySummaryTestAPI(t *testing.T, svc monthlySummaryReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewMonthlySummaryHandler(svc).Register(api)
	return api
}

func TestHTTP_MonthlySummary(t *testing.T) {
	mockSvc := new(mockMonthlySummaryReporter)
	mockSvc.On("MonthlySummary", mock.Anything, 2025, time.June).
		Return(&service.MonthlySummary{
			Year:               2025,
			Month:              time.June,
			TotalIncome:        decimal.RequireFromString("1000"),
			TotalExpense:       decimal.RequireFromString("400"),
			NetSavings:         decimal.RequireFromString("600"),
			SavingsRate:        decimal.RequireFromString("60"),
			PreviousNetSavings: decimal.RequireFromString("300"),
			NetSavingsChange:   decimal.RequireFromString("300"),
		}, nil)

	resp := newMonthlySummaryTestAPI(t, mockSvc).Get("/v1/reports/monthly-summary?year=2025&month=6")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlySummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1000", body.TotalIncome)
	assert.Equal(t, "60", body.SavingsRate)
	assert.Equal(t, 6, body.Month)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlySummary_BadMonth(t *testing.T) {
	mockSvc := new(mockMonthlySummaryReporter)

	resp := newMonthlySummaryTestAPI(t, mockSvc).Get("/v1/reports/monthly-summary?year=2025&month=13")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "MonthlySummary")
}
