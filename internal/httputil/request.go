package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
//
// Validation failures are turned into an error that names every offending
// field so that clients know what to fix.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return validationError(validationErrors)
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// validationError builds one error listing all fields that failed
// validation.
func validationError(errs validator.ValidationErrors) error {
	fields := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", err.Field()))
		case "email":
			fields = append(fields, fmt.Sprintf("%s must be a valid email address", err.Field()))
		case "min":
			fields = append(fields, fmt.Sprintf("%s must be at least %s characters long", err.Field(), err.Param()))
		case "max":
			fields = append(fields, fmt.Sprintf("%s must not be longer than %s characters", err.Field(), err.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s is not valid", err.Field()))
		}
	}

	return errors.New(strings.Join(fields, ", "))
}

// UUIDFromString binds a string to a UUID
//
// This is needed because gin does not support form binding to uuid.UUID currently.
// Follow https://github.com/gin-gonic/gin/pull/3045 to see when this gets resolved.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}

	return u, nil
}
