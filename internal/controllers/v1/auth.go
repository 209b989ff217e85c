package v1

import (
	"net/http"
	"strings"

	"github.com/fintrack-app/backend/internal/auth"
	"github.com/fintrack-app/backend/internal/config"
	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the unauthenticated routes for
// registration and token handling with the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, cfg *config.Config) {
	r.OPTIONS("/register", OptionsAuth)
	r.POST("/register", Register())

	r.OPTIONS("/token", OptionsAuth)
	r.POST("/token", Token(cfg))

	r.OPTIONS("/token/refresh", OptionsAuth)
	r.POST("/token/refresh", RefreshToken(cfg))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Authentication
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Register creates the handler for user registration.
//
// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Authentication
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RegisterRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{Error: &e})
			return
		}

		user := models.User{
			Username: request.Username,
			Email:    request.Email,
		}

		err = user.SetPassword(request.Password)
		if err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, UserResponse{Error: &e})
			return
		}

		err = models.DB.Create(&user).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{Error: &e})
			return
		}

		data := newUser(user)
		c.JSON(http.StatusCreated, UserResponse{Data: &data})
	}
}

// Token creates the handler exchanging credentials for a token pair.
//
// @Summary		Obtain token pair
// @Description	Exchanges username and password for an access and refresh token pair
// @Tags			Authentication
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Param			credentials	body		TokenRequest	true	"Credentials"
// @Router			/v1/auth/token [post]
func Token(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request TokenRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TokenResponse{Error: &e})
			return
		}

		// An unknown username and a wrong password are indistinguishable on
		// purpose
		var user models.User
		err = models.DB.Where("username = ?", strings.ToLower(request.Username)).First(&user).Error
		if err != nil || !user.CheckPassword(request.Password) {
			e := errInvalidCredentials.Error()
			c.JSON(http.StatusUnauthorized, TokenResponse{Error: &e})
			return
		}

		pair, err := auth.NewPair(user.ID, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
		if err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, TokenResponse{Error: &e})
			return
		}

		c.JSON(http.StatusOK, TokenResponse{Data: &pair})
	}
}

// RefreshToken creates the handler exchanging a refresh token for a new
// token pair.
//
// @Summary		Refresh token pair
// @Description	Exchanges a valid refresh token for a new access and refresh token pair
// @Tags			Authentication
// @Produce		json
// @Success		200		{object}	TokenResponse
// @Failure		400		{object}	TokenResponse
// @Failure		401		{object}	TokenResponse
// @Param			token	body		RefreshRequest	true	"Refresh token"
// @Router			/v1/auth/token/refresh [post]
func RefreshToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RefreshRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), TokenResponse{Error: &e})
			return
		}

		claims, err := auth.Parse(request.Refresh, cfg.JWTSecret, auth.TypeRefresh)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusUnauthorized, TokenResponse{Error: &e})
			return
		}

		// The user might have been deleted since the token was issued
		var user models.User
		err = models.DB.First(&user, "id = ?", claims.UserID).Error
		if err != nil {
			e := auth.ErrTokenInvalid.Error()
			c.JSON(http.StatusUnauthorized, TokenResponse{Error: &e})
			return
		}

		pair, err := auth.NewPair(user.ID, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
		if err != nil {
			e := models.ErrGeneral.Error()
			c.JSON(http.StatusInternalServerError, TokenResponse{Error: &e})
			return
		}

		c.JSON(http.StatusOK, TokenResponse{Data: &pair})
	}
}
