package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fintrack-app/backend/internal/controllers/v1"
	"github.com/fintrack-app/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Username: "Morre",
		Password: "correct horse battery staple",
		Email:    "morre@example.com",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "morre", response.Data.Username, "username must be normalized to lowercase")
	assert.Equal(suite.T(), "morre@example.com", response.Data.Email)
}

func (suite *TestSuiteStandard) TestRegisterValidation() {
	tests := []struct {
		name string
		body any
	}{
		{"no body", ""},
		{"missing password", v1.RegisterRequest{Username: "morre"}},
		{"short password", v1.RegisterRequest{Username: "morre", Password: "short"}},
		{"invalid email", v1.RegisterRequest{Username: "morre", Password: "correct horse battery staple", Email: "nope"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateUsername() {
	_ = suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.RegisterRequest{
		Username: "MORRE",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "this username is already taken", *response.Error)
}

func (suite *TestSuiteStandard) TestToken() {
	_ = suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/token", v1.TokenRequest{
		Username: "Morre",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.Access)
	assert.NotEmpty(suite.T(), response.Data.Refresh)
}

func (suite *TestSuiteStandard) TestTokenInvalidCredentials() {
	_ = suite.registerTestUser("morre")

	// A wrong password and an unknown user produce the same response
	for _, body := range []v1.TokenRequest{
		{Username: "morre", Password: "wrong password entirely"},
		{Username: "nobody", Password: "correct horse battery staple"},
	} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/token", body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

		var response v1.TokenResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		require.NotNil(suite.T(), response.Error)
		assert.Equal(suite.T(), "invalid credentials", *response.Error)
	}
}

func (suite *TestSuiteStandard) TestTokenRefresh() {
	_ = suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/token", v1.TokenRequest{
		Username: "morre",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var token v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &token)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/auth/token/refresh", v1.RefreshRequest{
		Refresh: token.Data.Refresh,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var refreshed v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &refreshed)
	require.NotNil(suite.T(), refreshed.Data)
	assert.NotEmpty(suite.T(), refreshed.Data.Access)
}

func (suite *TestSuiteStandard) TestTokenRefreshRejectsAccessToken() {
	_ = suite.registerTestUser("morre")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/token", v1.TokenRequest{
		Username: "morre",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var token v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &token)

	// An access token must not be usable for refreshing
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/auth/token/refresh", v1.RefreshRequest{
		Refresh: token.Data.Access,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestTokenRefreshGarbage() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/token/refresh", v1.RefreshRequest{
		Refresh: "not a token",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	for _, path := range []string{
		"/v1/categories",
		"/v1/transactions",
		"/v1/budgets",
		"/v1/analysis/spending-by-category",
		"/v1/analysis/monthly-summary",
		"/v1/analysis/budget-vs-actual",
	} {
		recorder := test.Request(suite.T(), http.MethodGet, path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	}
}
