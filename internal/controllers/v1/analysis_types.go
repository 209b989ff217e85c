package v1

import "github.com/fintrack-app/backend/internal/reports"

// NoDataResponse is returned by analysis endpoints when there are no
// records to aggregate. The message states which data is missing.
type NoDataResponse struct {
	Message string `json:"message" example:"No expense data available for analysis."`
}

type SpendingByCategoryResponse struct {
	Data  []reports.CategorySpending `json:"data"`  // One row per category with expenses
	Error *string                    `json:"error"` // The error, if any occurred
}

type MonthlySummaryResponse struct {
	Data  []reports.MonthSummary `json:"data"`  // One row per month with transactions
	Error *string                `json:"error"` // The error, if any occurred
}

type BudgetVsActualResponse struct {
	Data  []reports.BudgetComparison `json:"data"`  // One row per budget
	Error *string                    `json:"error"` // The error, if any occurred
}
