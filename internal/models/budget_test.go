package models_test

import (
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetRequiresCategory() {
	user := suite.createTestUser("morre")

	budget := models.Budget{
		UserID:          user.ID,
		AmountAllocated: decimal.NewFromInt(200),
		StartDate:       types.NewDate(2024, 3, 1),
		EndDate:         types.NewDate(2024, 3, 31),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetCategoryRequired)
}

func (suite *TestSuiteStandard) TestBudgetNegativeAllocation() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)

	budget := models.Budget{
		UserID:          user.ID,
		CategoryID:      category.ID,
		AmountAllocated: decimal.NewFromInt(-200),
		StartDate:       types.NewDate(2024, 3, 1),
		EndDate:         types.NewDate(2024, 3, 31),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestBudgetUnknownCategory() {
	user := suite.createTestUser("morre")

	budget := models.Budget{
		UserID:          user.ID,
		CategoryID:      uuid.New(),
		AmountAllocated: decimal.NewFromInt(200),
		StartDate:       types.NewDate(2024, 3, 1),
		EndDate:         types.NewDate(2024, 3, 31),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetForeignCategory() {
	owner := suite.createTestUser("morre")
	other := suite.createTestUser("blank")
	category := suite.createTestCategory(other.ID, "Groceries", models.TypeExpense)

	budget := models.Budget{
		UserID:          owner.ID,
		CategoryID:      category.ID,
		AmountAllocated: decimal.NewFromInt(200),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetUniquePerRange() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)

	_ = suite.createTestBudget(models.Budget{
		UserID:          user.ID,
		CategoryID:      category.ID,
		AmountAllocated: decimal.NewFromInt(200),
	})

	duplicate := models.Budget{
		UserID:          user.ID,
		CategoryID:      category.ID,
		AmountAllocated: decimal.NewFromInt(300),
		StartDate:       types.NewDate(2024, 3, 1),
		EndDate:         types.NewDate(2024, 3, 31),
	}

	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetOverlappingRangesAllowed() {
	// Only identical ranges collide, overlapping ones are fine
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)

	_ = suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	_ = suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		StartDate:  types.NewDate(2024, 3, 15),
		EndDate:    types.NewDate(2024, 4, 14),
	})
}

func (suite *TestSuiteStandard) TestBudgetZeroAllocationAllowed() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)

	budget := suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
	})

	assert.True(suite.T(), budget.AmountAllocated.IsZero())
}
