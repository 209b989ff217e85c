package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/fintrack-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	headers := suite.registerTestUser("morre")
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount:      decimal.RequireFromString("14.50"),
		Type:        models.TypeExpense,
		CategoryID:  &category.ID,
		Description: "Weekly groceries",
		Date:        types.NewDate(2024, 3, 5),
	})

	assert.True(suite.T(), transaction.Amount.Equal(decimal.RequireFromString("14.50")))
	assert.Equal(suite.T(), "Groceries", transaction.CategoryName)
	assert.Equal(suite.T(), "2024-03-05", transaction.Date.String())
	assert.Contains(suite.T(), transaction.Links.Self, fmt.Sprintf("/v1/transactions/%s", transaction.ID))
}

func (suite *TestSuiteStandard) TestTransactionCreateUncategorized() {
	headers := suite.registerTestUser("morre")

	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	assert.Nil(suite.T(), transaction.CategoryID)
	assert.Empty(suite.T(), transaction.CategoryName)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	headers := suite.registerTestUser("morre")
	category := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"no body", "", http.StatusBadRequest},
		{"missing date", v1.TransactionEditable{Amount: decimal.NewFromInt(10), Type: models.TypeExpense, CategoryID: &category.ID}, http.StatusBadRequest},
		{"invalid type", map[string]any{"amount": 10, "type": "sideways", "date": "2024-03-05"}, http.StatusBadRequest},
		{"negative amount", map[string]any{"amount": -10, "type": "expense", "date": "2024-03-05"}, http.StatusBadRequest},
		{"malformed date", map[string]any{"amount": 10, "type": "expense", "date": "05.03.2024"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", tt.body, headers)
		test.AssertHTTPStatus(suite.T(), &recorder, tt.status)
	}
}

func (suite *TestSuiteStandard) TestTransactionCreateForeignCategory() {
	// Referencing another user's category is a 404, not a 403
	ownerHeaders := suite.registerTestUser("morre")
	otherHeaders := suite.registerTestUser("blank")
	category := suite.createTestCategory(otherHeaders, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", v1.TransactionEditable{
		Amount:     decimal.NewFromInt(10),
		Type:       models.TypeExpense,
		CategoryID: &category.ID,
		Date:       types.NewDate(2024, 3, 5),
	}, ownerHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsListOrder() {
	headers := suite.registerTestUser("morre")

	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(1), Type: models.TypeExpense, Date: types.NewDate(2024, 3, 1),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(2), Type: models.TypeExpense, Date: types.NewDate(2024, 3, 20),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(3), Type: models.TypeExpense, Date: types.NewDate(2024, 3, 10),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 3)

	// Most recent first
	assert.Equal(suite.T(), "2024-03-20", response.Data[0].Date.String())
	assert.Equal(suite.T(), "2024-03-10", response.Data[1].Date.String())
	assert.Equal(suite.T(), "2024-03-01", response.Data[2].Date.String())
}

func (suite *TestSuiteStandard) TestTransactionsListFilters() {
	headers := suite.registerTestUser("morre")
	groceries := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})
	salary := suite.createTestCategory(headers, v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome})

	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(20), Type: models.TypeExpense, CategoryID: &groceries.ID,
		Description: "Farmers market", Date: types.NewDate(2024, 3, 5),
	})
	_ = suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(2500), Type: models.TypeIncome, CategoryID: &salary.ID,
		Description: "March salary", Date: types.NewDate(2024, 3, 28),
	})

	tests := []struct {
		query string
		count int
	}{
		{"type=income", 1},
		{"type=expense", 1},
		{fmt.Sprintf("category=%s", groceries.ID), 1},
		{"from=2024-03-10", 1},
		{"until=2024-03-10", 1},
		{"from=2024-03-01&until=2024-03-31", 2},
		{"search=market", 1},
		{"search=nothing like this", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?"+tt.query, nil, headers)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		assert.Len(suite.T(), response.Data, tt.count, "wrong number of transactions for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidCategoryFilter() {
	headers := suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/transactions?category=not-a-uuid", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	headers := suite.registerTestUser("morre")

	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
		Date:   types.NewDate(2024, 3, 5),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Links.Self, map[string]any{
		"amount": 12.5,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(suite.T(), "2024-03-05", response.Data.Date.String(), "date must stay unchanged")
}

func (suite *TestSuiteStandard) TestTransactionUpdateForeignCategory() {
	ownerHeaders := suite.registerTestUser("morre")
	otherHeaders := suite.registerTestUser("blank")
	category := suite.createTestCategory(otherHeaders, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	transaction := suite.createTestTransaction(ownerHeaders, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, transaction.Links.Self, map[string]any{
		"categoryId": category.ID.String(),
	}, ownerHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionScopedToUser() {
	ownerHeaders := suite.registerTestUser("morre")
	otherHeaders := suite.registerTestUser("blank")

	transaction := suite.createTestTransaction(ownerHeaders, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodGet, transaction.Links.Self, nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	headers := suite.registerTestUser("morre")

	transaction := suite.createTestTransaction(headers, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, transaction.Links.Self, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, transaction.Links.Self, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	headers := suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions/%s", uuid.New()), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no transaction matching your query", *response.Error)
}
