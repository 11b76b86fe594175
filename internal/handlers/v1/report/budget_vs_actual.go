package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// BudgetVsActualInput is the Huma input for the budget-vs-actual report.
type BudgetVsActualInput struct {
	Year  int `query:"year" minimum:"1" doc:"Calendar year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// BudgetVsActualOutput is the Huma output for the budget-vs-actual
// report.
type BudgetVsActualOutput struct {
	Body BudgetVsActualResponseBody
}

// budgetVsActualReporter is the interface for the budget-vs-actual
// report.
type budgetVsActualReporter interface {
	BudgetVsActual(ctx context.Context, year int, month time.Month) (*service.BudgetVsActualReport, error)
}

// BudgetVsActualHandler handles GET /v1/reports/budget-vs-actual.
type BudgetVsActualHandler struct {
	ReportService budgetVsActualReporter
}

// NewBudgetVsActualHandler creates a new BudgetVsActualHandler.
func NewBudgetVsActualHandler(svc budgetVsActualReporter) *BudgetVsActualHandler {
	return &BudgetVsActualHandler{ReportService: svc}
}

// Register registers the budget-vs-actual endpoint with the Huma API.
func (h *BudgetVsActualHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-vs-actual",
		Method:      http.MethodGet,
		Path:        "/v1/reports/budget-vs-actual",
		Summary:     "Budget vs actual report",
		Description: "Compares each budget of the month against realized expense totals.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BudgetVsActualHandler) handle(ctx context.Context, input *BudgetVsActualInput) (*BudgetVsActualOutput, error) {
	logData := logging.GetLogData(ctx)

	if input.Month < 1 || input.Month > 12 {
		return nil, huma.NewError(http.StatusBadRequest, "month must be 1-12", nil)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetVsActualMs")
	}
	report, err := h.ReportService.BudgetVsActual(ctx, input.Year, time.Month(input.Month))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to build budget vs actual report")
	}

	if logData != nil {
		logData.AddData("categoryCount", len(report.Categories))
	}

	return &BudgetVsActualOutput{Body: budgetVsActualFromService(report)}, nil
}
