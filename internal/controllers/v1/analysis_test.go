package v1_test

import (
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/fintrack-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSpendingByCategory() {
	headers := suite.registerTestUser("morre")
	groceries := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})
	salary := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome})

	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.RequireFromString("14.50"), Type: models.TypeExpense, CategoryID: &groceries.ID,
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.RequireFromString("27.13"), Type: models.TypeExpense, CategoryID: &groceries.ID,
	})

	// Income and uncategorized expenses
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(2500), Type: models.TypeIncome, CategoryID: &salary.ID,
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(5), Type: models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/spending-by-category", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.SpendingByCategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)

	// Uncategorized expenses sort first under the empty name
	assert.Equal(suite.T(), "", response.Data[0].Category)
	assert.True(suite.T(), response.Data[0].TotalAmount.Equal(decimal.NewFromInt(5)))

	assert.Equal(suite.T(), "Groceries", response.Data[1].Category)
	assert.True(suite.T(), response.Data[1].TotalAmount.Equal(decimal.RequireFromString("41.63")))
}

func (suite *TestSuiteStandard) TestSpendingByCategoryNoData() {
	headers := suite.registerTestUser("morre")
	salary := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome})

	// Income alone is no data for a spending report
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(2500), Type: models.TypeIncome, CategoryID: &salary.ID,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/spending-by-category", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NoDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "No expense data available for analysis.", response.Message)
}

func (suite *TestSuiteStandard) TestSpendingByCategoryScopedToUser() {
	ownerHeaders := suite.registerTestUser("morre")
	otherHeaders := suite.registerTestUser("blank")

	_ = suite.createTestTransaction(ownerHeaders, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/spending-by-category", nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NoDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "No expense data available for analysis.", response.Message)
}

func (suite *TestSuiteStandard) TestMonthlySummary() {
	headers := suite.registerTestUser("morre")

	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(2500), Type: models.TypeIncome, Date: types.NewDate(2024, 3, 1),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(300), Type: models.TypeExpense, Date: types.NewDate(2024, 3, 15),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(1200), Type: models.TypeExpense, Date: types.NewDate(2024, 4, 1),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/monthly-summary", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthlySummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)

	assert.Equal(suite.T(), "2024-03", response.Data[0].Period.String())
	assert.True(suite.T(), response.Data[0].Net.Equal(decimal.NewFromInt(2200)))

	assert.Equal(suite.T(), "2024-04", response.Data[1].Period.String())
	assert.True(suite.T(), response.Data[1].Income.IsZero())
	assert.True(suite.T(), response.Data[1].Net.Equal(decimal.NewFromInt(-1200)))
}

func (suite *TestSuiteStandard) TestMonthlySummaryNoData() {
	headers := suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/monthly-summary", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NoDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "No transaction data available for monthly summary.", response.Message)
}

func (suite *TestSuiteStandard) TestBudgetVsActual() {
	headers := suite.registerTestUser("morre")
	groceries := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})
	dining := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Dining", Type: models.TypeExpense})

	_ = suite.createTestBudget(headers, v1.BudgetEditable{
		CategoryID: groceries.ID, AmountAllocated: decimal.NewFromInt(200),
		StartDate: types.NewDate(2024, 3, 1), EndDate: types.NewDate(2024, 3, 31),
	})
	_ = suite.createTestBudget(headers, v1.BudgetEditable{
		CategoryID: dining.ID, AmountAllocated: decimal.NewFromInt(100),
		StartDate: types.NewDate(2024, 3, 1), EndDate: types.NewDate(2024, 3, 31),
	})

	// Spending inside, on and outside the budget range
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(50), Type: models.TypeExpense, CategoryID: &groceries.ID, Date: types.NewDate(2024, 3, 15),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(20), Type: models.TypeExpense, CategoryID: &groceries.ID, Date: types.NewDate(2024, 3, 31),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(500), Type: models.TypeExpense, CategoryID: &groceries.ID, Date: types.NewDate(2024, 4, 1),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(130), Type: models.TypeExpense, CategoryID: &dining.ID, Date: types.NewDate(2024, 3, 10),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/budget-vs-actual", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetVsActualResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)

	assert.Equal(suite.T(), "Groceries", response.Data[0].Category)
	assert.True(suite.T(), response.Data[0].Spent.Equal(decimal.NewFromInt(70)), "wrong spent amount: %s", response.Data[0].Spent)
	assert.True(suite.T(), response.Data[0].Remaining.Equal(decimal.NewFromInt(130)))

	// Overspent budgets report a negative remaining amount
	assert.Equal(suite.T(), "Dining", response.Data[1].Category)
	assert.True(suite.T(), response.Data[1].Remaining.Equal(decimal.NewFromInt(-30)))
}

func (suite *TestSuiteStandard) TestBudgetVsActualNoData() {
	headers := suite.registerTestUser("morre")

	// Transactions alone do not make a budget report
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10), Type: models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/analysis/budget-vs-actual", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NoDataResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "No budgets set for analysis.", response.Message)
}
