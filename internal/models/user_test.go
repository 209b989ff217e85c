package models_test

import (
	"github.com/fintrack-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserNormalizesUsername() {
	user := suite.createTestUser("  Morre ")
	assert.Equal(suite.T(), "morre", user.Username)
}

func (suite *TestSuiteStandard) TestUsernameUniqueCaseInsensitive() {
	_ = suite.createTestUser("morre")

	duplicate := models.User{Username: "MORRE"}
	err := duplicate.SetPassword("correct horse battery staple")
	require.Nil(suite.T(), err)

	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestUserPassword() {
	user := suite.createTestUser("morre")

	assert.True(suite.T(), user.CheckPassword("correct horse battery staple"))
	assert.False(suite.T(), user.CheckPassword("Correct Horse Battery Staple"))
	assert.False(suite.T(), user.CheckPassword(""))
}

func (suite *TestSuiteStandard) TestUserPasswordHashNotSerialized() {
	user := suite.createTestUser("morre")
	assert.NotContains(suite.T(), user.PasswordHash, "correct horse battery staple")
}

func (suite *TestSuiteStandard) TestUserDeleteCascades() {
	user := suite.createTestUser("morre")
	category := suite.createTestCategory(user.ID, "Groceries", models.TypeExpense)
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TypeExpense,
		CategoryID: &category.ID,
	})

	err := models.DB.Delete(&user).Error
	require.Nil(suite.T(), err)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(suite.T(), count, "categories of a deleted user must be removed")

	require.Nil(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(suite.T(), count, "transactions of a deleted user must be removed")
}
