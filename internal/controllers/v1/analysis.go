package v1

import (
	"net/http"

	"github.com/fintrack-app/backend/internal/auth"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/reports"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterAnalysisRoutes registers the routes for the reporting engine
// with the RouterGroup that is passed.
func RegisterAnalysisRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/spending-by-category", OptionsAnalysis)
	r.GET("/spending-by-category", GetSpendingByCategory)

	r.OPTIONS("/monthly-summary", OptionsAnalysis)
	r.GET("/monthly-summary", GetMonthlySummary)

	r.OPTIONS("/budget-vs-actual", OptionsAnalysis)
	r.GET("/budget-vs-actual", GetBudgetVsActual)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Router			/v1/analysis/spending-by-category [options]
func OptionsAnalysis(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending by category
// @Description	Sums all expenses by category. Uncategorized expenses are reported under an empty category name.
// @Tags			Analysis
// @Produce		json
// @Success		200	{object}	SpendingByCategoryResponse
// @Success		200	{object}	NoDataResponse	"When there are no expenses"
// @Failure		500	{object}	SpendingByCategoryResponse
// @Router			/v1/analysis/spending-by-category [get]
// @Security		BearerAuth
func GetSpendingByCategory(c *gin.Context) {
	var transactions []models.Transaction
	err := models.DB.
		Preload("Category").
		Where("user_id = ? AND type = ?", auth.UserID(c), models.TypeExpense).
		Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SpendingByCategoryResponse{Error: &e})
		return
	}

	rows, ok := reports.SpendingByCategory(transactions)
	if !ok {
		c.JSON(http.StatusOK, NoDataResponse{Message: "No expense data available for analysis."})
		return
	}

	c.JSON(http.StatusOK, SpendingByCategoryResponse{Data: rows})
}

// @Summary		Monthly summary
// @Description	Sums income and expenses per calendar month, oldest month first
// @Tags			Analysis
// @Produce		json
// @Success		200	{object}	MonthlySummaryResponse
// @Success		200	{object}	NoDataResponse	"When there are no transactions"
// @Failure		500	{object}	MonthlySummaryResponse
// @Router			/v1/analysis/monthly-summary [get]
// @Security		BearerAuth
func GetMonthlySummary(c *gin.Context) {
	var transactions []models.Transaction
	err := models.DB.
		Where("user_id = ?", auth.UserID(c)).
		Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{Error: &e})
		return
	}

	rows, ok := reports.MonthlySummary(transactions)
	if !ok {
		c.JSON(http.StatusOK, NoDataResponse{Message: "No transaction data available for monthly summary."})
		return
	}

	c.JSON(http.StatusOK, MonthlySummaryResponse{Data: rows})
}

// @Summary		Budget vs. actual
// @Description	Compares each budget's allocation with the spending in its date range. All budgets are reported, including past and future ones.
// @Tags			Analysis
// @Produce		json
// @Success		200	{object}	BudgetVsActualResponse
// @Success		200	{object}	NoDataResponse	"When there are no budgets"
// @Failure		500	{object}	BudgetVsActualResponse
// @Router			/v1/analysis/budget-vs-actual [get]
// @Security		BearerAuth
func GetBudgetVsActual(c *gin.Context) {
	userID := auth.UserID(c)

	var budgets []models.Budget
	err := models.DB.
		Preload("Category").
		Order("created_at ASC").
		Where("user_id = ?", userID).
		Find(&budgets).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetVsActualResponse{Error: &e})
		return
	}

	spent := func(categoryID uuid.UUID, from, to types.Date) (decimal.Decimal, error) {
		return models.ExpenseSum(models.DB, userID, categoryID, from, to)
	}

	rows, ok, err := reports.BudgetVsActual(budgets, spent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetVsActualResponse{Error: &e})
		return
	}

	if !ok {
		c.JSON(http.StatusOK, NoDataResponse{Message: "No budgets set for analysis."})
		return
	}

	c.JSON(http.StatusOK, BudgetVsActualResponse{Data: rows})
}
