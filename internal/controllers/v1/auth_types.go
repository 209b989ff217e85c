package v1

import (
	"github.com/fintrack-app/backend/internal/auth"
	"github.com/fintrack-app/backend/internal/models"
)

// RegisterRequest holds all values required to register a new user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"morre"`
	Password string `json:"password" binding:"required,min=8" example:"correct horse battery staple"`
	Email    string `json:"email" binding:"omitempty,email" example:"morre@example.com"` // Optional
}

type User struct {
	models.DefaultModel
	Username string `json:"username" example:"morre"`
	Email    string `json:"email,omitempty" example:"morre@example.com"`
}

func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Email:        model.Email,
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`  // Data for the user
	Error *string `json:"error"` // The error, if any occurred
}

// TokenRequest holds the credentials exchanged for a token pair.
type TokenRequest struct {
	Username string `json:"username" binding:"required" example:"morre"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// RefreshRequest holds the refresh token exchanged for a new token pair.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type TokenResponse struct {
	Data  *auth.Pair `json:"data"`  // The access and refresh token pair
	Error *string    `json:"error"` // The error, if any occurred
}
