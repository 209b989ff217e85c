package models_test

import (
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionInvalidType() {
	user := suite.createTestUser("morre")

	transaction := models.Transaction{
		UserID: user.ID,
		Type:   "sideways",
		Amount: decimal.NewFromInt(10),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmount() {
	user := suite.createTestUser("morre")

	transaction := models.Transaction{
		UserID: user.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(-10),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionZeroAmountAllowed() {
	user := suite.createTestUser("morre")

	transaction := models.Transaction{
		UserID: user.ID,
		Type:   models.TypeExpense,
		Amount: decimal.Zero,
		Date:   types.NewDate(2024, 3, 5),
	}

	err := models.DB.Create(&transaction).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToToday() {
	user := suite.createTestUser("morre")

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Type:   models.TypeExpense,
	})

	assert.True(suite.T(), transaction.Date.Equal(types.Today()))
}

func (suite *TestSuiteStandard) TestTransactionUncategorized() {
	user := suite.createTestUser("morre")

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Type:   models.TypeExpense,
	})

	assert.Nil(suite.T(), transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionNilUUIDCategory() {
	// An explicit null UUID is normalized to no category
	user := suite.createTestUser("morre")

	nilID := uuid.Nil
	transaction := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TypeExpense,
		CategoryID: &nilID,
	})

	assert.Nil(suite.T(), transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionUnknownCategory() {
	user := suite.createTestUser("morre")

	unknown := uuid.New()
	transaction := models.Transaction{
		UserID:     user.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromInt(10),
		CategoryID: &unknown,
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionForeignCategory() {
	// Another user's category reads as nonexistent, not as forbidden
	owner := suite.createTestUser("morre")
	other := suite.createTestUser("blank")
	category := suite.createTestCategory(other.ID, "Groceries", models.TypeExpense)

	transaction := models.Transaction{
		UserID:     owner.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromInt(10),
		CategoryID: &category.ID,
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseSum() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)

	for _, transaction := range []models.Transaction{
		// On the boundaries, both must count
		{Date: types.NewDate(2024, 3, 1), Amount: decimal.NewFromInt(10)},
		{Date: types.NewDate(2024, 3, 31), Amount: decimal.NewFromInt(20)},
		// Inside the range
		{Date: types.NewDate(2024, 3, 15), Amount: decimal.RequireFromString("12.34")},
		// Outside the range
		{Date: types.NewDate(2024, 2, 29), Amount: decimal.NewFromInt(100)},
		{Date: types.NewDate(2024, 4, 1), Amount: decimal.NewFromInt(100)},
	} {
		transaction.UserID = user.ID
		transaction.Type = models.TypeExpense
		transaction.CategoryID = &category.ID
		_ = suite.createTestTransaction(transaction)
	}

	sum, err := models.ExpenseSum(models.DB, user.ID, category.ID, types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.Equal(decimal.RequireFromString("42.34")), "wrong sum: %s", sum)
}

func (suite *TestSuiteStandard) TestExpenseSumIgnoresIncome() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Side gig", models.TypeIncome)

	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TypeIncome,
		Amount:     decimal.NewFromInt(500),
		CategoryID: &category.ID,
		Date:       types.NewDate(2024, 3, 15),
	})

	sum, err := models.ExpenseSum(models.DB, user.ID, category.ID, types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.IsZero())
}

func (suite *TestSuiteStandard) TestExpenseSumNoTransactions() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)

	sum, err := models.ExpenseSum(models.DB, user.ID, category.ID, types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.IsZero())
}

func (suite *TestSuiteStandard) TestExpenseSumScopedToUser() {
	owner := suite.createTestUser("morre")
	other := suite.createTestUser("blank")

	category := suite.createTestCategory(owner.ID, "Groceries", models.TypeExpense)
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     owner.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromInt(10),
		CategoryID: &category.ID,
		Date:       types.NewDate(2024, 3, 15),
	})

	sum, err := models.ExpenseSum(models.DB, other.ID, category.ID, types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionGeneralError() {
	suite.CloseDB()

	transaction := models.Transaction{Type: models.TypeExpense}
	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
