package auth

import (
	"net/http"
	"strings"

	"github.com/fintrack-app/backend/internal/httperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contextUserID is the key under which the middleware stores the
// authenticated user's ID in the gin context.
const contextUserID = "fintrack-user-id"

// Middleware authenticates requests with a bearer access token.
//
// Requests without a valid, unexpired access token are rejected with
// HTTP 401. On success, the user ID from the token is stored in the
// request context for UserID.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.NewFromString("you must provide a bearer token in the Authorization header"))
			return
		}

		claims, err := Parse(strings.TrimPrefix(header, "Bearer "), secret, TypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrTokenInvalid))
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the request context.
//
// It is only valid for requests that passed the Middleware.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}
