// Package auth issues and verifies the bearer credentials of the API.
//
// Credentials come as a pair of JWTs: a short-lived access token used on
// every authenticated request and a longer-lived refresh token that is
// only accepted by the token refresh endpoint.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates access from refresh tokens so that a refresh
// token can never be used to authenticate a request.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

var (
	ErrTokenInvalid   = errors.New("the token is invalid or expired")
	ErrTokenWrongType = errors.New("a token of the wrong type was used")
)

// Claims are the JWT claims carried by both token types.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// Pair is an access and refresh token pair as returned by the token
// endpoints.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// NewPair signs a fresh access and refresh token pair for a user.
func NewPair(userID uuid.UUID, secret string, accessTTL, refreshTTL time.Duration) (Pair, error) {
	access, err := sign(userID, TypeAccess, secret, accessTTL)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := sign(userID, TypeRefresh, secret, refreshTTL)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

func sign(userID uuid.UUID, tokenType TokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies a token string and returns its claims if the token is
// valid, unexpired and of the expected type.
func Parse(tokenString string, secret string, tokenType TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.TokenType != tokenType {
		return nil, ErrTokenWrongType
	}

	return claims, nil
}
