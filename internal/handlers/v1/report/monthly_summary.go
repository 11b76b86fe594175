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

// MonthlySummaryInput is the Huma input for the monthly summary report.
type MonthlySummaryInput struct {
	Year  int `query:"year" minimum:"1" doc:"Calendar year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// MonthlySummaryOutput is the Huma output for the monthly summary
// report.
type MonthlySummaryOutput struct {
	Body MonthlySummaryResponseBody
}

// monthlySummaryReporter is the interface for the monthly summary
// report.
type monthlySummaryReporter interface {
	MonthlySummary(ctx context.Context, year int, month time.Month) (*service.MonthlySummary, error)
}

// MonthlySummaryHandler handles GET /v1/reports/monthly-summary.
type MonthlySummaryHandler struct {
	ReportService monthlySummaryReporter
}

// NewMonthlySummaryHandler creates a new MonthlySummaryHandler.
func NewMonthlySummaryHandler(svc monthlySummaryReporter) *MonthlySummaryHandler {
	return &MonthlySummaryHandler{ReportService: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *MonthlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/reports/monthly-summary",
		Summary:     "Monthly summary report",
		Description: "Totals one month's income and expense with a trend against the previous month.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *MonthlySummaryHandler) handle(ctx context.Context, input *MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	if input.Month < 1 || input.Month > 12 {
		return nil, huma.NewError(http.StatusBadRequest, "month must be 1-12", nil)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summary, err := h.ReportService.MonthlySummary(ctx, input.Year, time.Month(input.Month))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to build monthly summary")
	}

	if logData != nil {
		logData.AddData("categoryCount", len(summary.Categories))
	}

	return &MonthlySummaryOutput{Body: monthlySummaryFromService(summary)}, nil
}
