package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestModelGetsID() {
	user := suite.createTestUser("morre")
	assert.NotEqual(suite.T(), uuid.Nil, user.ID)
}

func (suite *TestSuiteStandard) TestModelTimestampsUTC() {
	user := suite.createTestUser("morre")

	assert.Equal(suite.T(), time.UTC, user.CreatedAt.Location())
	assert.Equal(suite.T(), time.UTC, user.UpdatedAt.Location())
}
