package report

import (
	"github.com/carson-networks/budget-tracker/internal/service"
)

// BudgetVsActualRow is one category row of the budget-vs-actual report.
type BudgetVsActualRow struct {
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	Budgeted     string `json:"budgeted" doc:"Budgeted decimal amount"`
	Actual       string `json:"actual" doc:"Realized expense total"`
	Difference   string `json:"difference" doc:"Budgeted minus actual"`
	Percentage   string `json:"percentage" doc:"Actual as a percent of budgeted, two decimals"`
	Status       string `json:"status" enum:"under,on,over" doc:"Spend relative to budget"`
}

// BudgetVsActualResponseBody is the budget-vs-actual report body.
type BudgetVsActualResponseBody struct {
	Year            int                 `json:"year" doc:"Report year"`
	Month           int                 `json:"month" doc:"Report month, 1-12"`
	Categories      []BudgetVsActualRow `json:"categories" doc:"Per-category rows, ordered by name"`
	TotalBudgeted   string              `json:"totalBudgeted" doc:"Sum of budgeted amounts"`
	TotalActual     string              `json:"totalActual" doc:"Sum of realized expense totals"`
	TotalDifference string              `json:"totalDifference" doc:"Total budgeted minus total actual"`
}

// CategorySummary is one category's income and expense for the month.
type CategorySummary struct {
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	Income       string `json:"income" doc:"Income total"`
	Expense      string `json:"expense" doc:"Expense total"`
}

// MonthlySummaryResponseBody is the monthly summary report body.
type MonthlySummaryResponseBody struct {
	Year               int               `json:"year" doc:"Report year"`
	Month              int               `json:"month" doc:"Report month, 1-12"`
	TotalIncome        string            `json:"totalIncome" doc:"Income total for the month"`
	TotalExpense       string            `json:"totalExpense" doc:"Expense total for the month"`
	NetSavings         string            `json:"netSavings" doc:"Income minus expense"`
	SavingsRate        string            `json:"savingsRate" doc:"Net savings as a percent of income, two decimals"`
	PreviousNetSavings string            `json:"previousNetSavings" doc:"Net savings of the previous month"`
	NetSavingsChange   string            `json:"netSavingsChange" doc:"Net savings minus the previous month's"`
	Categories         []CategorySummary `json:"categories" doc:"Per-category breakdown, ordered by name"`
}

func budgetVsActualFromService(r *service.BudgetVsActualReport) BudgetVsActualResponseBody {
	body := BudgetVsActualResponseBody{
		Year:            r.Year,
		Month:           int(r.Month),
		Categories:      make([]BudgetVsActualRow, len(r.Categories)),
		TotalBudgeted:   r.TotalBudgeted.String(),
		TotalActual:     r.TotalActual.String(),
		TotalDifference: r.TotalDifference.String(),
	}
	for i, row := range r.Categories {
		body.Categories[i] = BudgetVsActualRow{
			CategoryID:   row.CategoryID.String(),
			CategoryName: row.CategoryName,
			Budgeted:     row.Budgeted.String(),
			Actual:       row.Actual.String(),
			Difference:   row.Difference.String(),
			Percentage:   row.Percentage.String(),
			Status:       row.Status.String(),
		}
	}
	return body
}

func monthlySummaryFromService(s *service.MonthlySummary) MonthlySummaryResponseBody {
	body := MonthlySummaryResponseBody{
		Year:               s.Year,
		Month:              int(s.Month),
		TotalIncome:        s.TotalIncome.String(),
		TotalExpense:       s.TotalExpense.String(),
		NetSavings:         s.NetSavings.String(),
		SavingsRate:        s.SavingsRate.String(),
		PreviousNetSavings: s.PreviousNetSavings.String(),
		NetSavingsChange:   s.NetSavingsChange.String(),
		Categories:         make([]CategorySummary, len(s.Categories)),
	}
	for i, c := range s.Categories {
		body.Categories[i] = CategorySummary{
			CategoryID:   c.CategoryID.String(),
			CategoryName: c.CategoryName,
			Income:       c.Income.String(),
			Expense:      c.Expense.String(),
		}
	}
	return body
}
