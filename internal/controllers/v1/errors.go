package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errNameRequired  = errors.New("the name must be set")
	errDateRequired  = errors.New("the date must be set")
	errRangeRequired = errors.New("the startDate and endDate must be set")

	errInvalidCredentials = errors.New("invalid credentials")
)
