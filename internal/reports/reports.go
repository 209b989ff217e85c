// Package reports derives read-only aggregate views from a user's
// transaction and budget records.
//
// All operations are pure: they take the scoped record set as input,
// never touch storage themselves and always produce the same rows for the
// same input. Monetary math uses decimals throughout, floats never enter
// the computation.
//
// Every operation additionally reports whether there was any data to
// aggregate. Callers need this to tell "no records" apart from records
// that sum to zero.
package reports

import (
	"sort"

	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategorySpending is one row of the spending-by-category report.
type CategorySpending struct {
	Category    string          `json:"category" example:"Groceries"` // Category name, empty for uncategorized transactions
	TotalAmount decimal.Decimal `json:"total_amount" example:"271.50"`
}

// MonthSummary is one row of the monthly income/expense summary.
type MonthSummary struct {
	Period  types.Month     `json:"period" example:"2024-03"`
	Income  decimal.Decimal `json:"income" example:"2317.34"`
	Expense decimal.Decimal `json:"expense" example:"1550.00"`
	Net     decimal.Decimal `json:"net" example:"767.34"`
}

// BudgetComparison is one row of the budget-vs-actual report.
type BudgetComparison struct {
	Category  string          `json:"category" example:"Groceries"`
	Allocated decimal.Decimal `json:"allocated" example:"200"`
	Spent     decimal.Decimal `json:"spent" example:"50"`
	Remaining decimal.Decimal `json:"remaining" example:"150"` // Negative when the budget is overspent
}

// SpentFunc returns the sum of expense amounts for a category within an
// inclusive date range. It is the query capability the budget-vs-actual
// report uses to look up actual spending.
type SpentFunc func(categoryID uuid.UUID, from, to types.Date) (decimal.Decimal, error)

// SpendingByCategory sums expense transactions by category name.
//
// Transactions without a category form their own group under the empty
// name. Rows are ordered by collated category name so that the output is
// deterministic for a given record set. Non-expense transactions are
// ignored.
func SpendingByCategory(transactions []models.Transaction) ([]CategorySpending, bool) {
	totals := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}

		var name string
		if t.Category != nil {
			name = t.Category.Name
		}

		totals[name] = totals[name].Add(t.Amount)
	}

	if len(totals) == 0 {
		return nil, false
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	collate.New(language.Und).SortStrings(names)

	rows := make([]CategorySpending, 0, len(names))
	for _, name := range names {
		rows = append(rows, CategorySpending{
			Category:    name,
			TotalAmount: totals[name],
		})
	}

	return rows, true
}

// MonthlySummary pivots all transactions into one row per calendar month
// with income and expense sums and the net difference.
//
// A month with transactions of only one type reports zero for the other.
// Rows are ordered ascending by month regardless of the input order.
func MonthlySummary(transactions []models.Transaction) ([]MonthSummary, bool) {
	if len(transactions) == 0 {
		return nil, false
	}

	months := make(map[types.Month]*MonthSummary)
	for _, t := range transactions {
		month := types.MonthOf(t.Date)

		row, ok := months[month]
		if !ok {
			row = &MonthSummary{Period: month}
			months[month] = row
		}

		switch t.Type {
		case models.TypeIncome:
			row.Income = row.Income.Add(t.Amount)
		case models.TypeExpense:
			row.Expense = row.Expense.Add(t.Amount)
		}
	}

	rows := make([]MonthSummary, 0, len(months))
	for _, row := range months {
		row.Net = row.Income.Sub(row.Expense)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Period.Before(rows[j].Period)
	})

	return rows, true
}

// BudgetVsActual compares each budget's allocation with the actual
// spending in its date range.
//
// Every budget is reported, whether or not its range overlaps the current
// date. Rows keep the order of the input budgets. The spent lookup hits
// storage and may fail, in which case the error is returned as is.
func BudgetVsActual(budgets []models.Budget, spent SpentFunc) ([]BudgetComparison, bool, error) {
	if len(budgets) == 0 {
		return nil, false, nil
	}

	rows := make([]BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		actual, err := spent(budget.CategoryID, budget.StartDate, budget.EndDate)
		if err != nil {
			return nil, false, err
		}

		rows = append(rows, BudgetComparison{
			Category:  budget.Category.Name,
			Allocated: budget.AmountAllocated,
			Spent:     actual,
			Remaining: budget.AmountAllocated.Sub(actual),
		})
	}

	return rows, true, nil
}
