// Package auth turns the ambient "current user" of the mobile client
// into an explicit session value: a signed token carries the uid, the
// middleware verifies it, and every core operation receives the viewer
// id from the request context rather than from global state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

type sessionClaims struct {
	jwt.RegisteredClaims
	UID string `json:"uid"`
}

// TokenManager signs and validates session tokens.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// CreateToken issues a session token for uid.
func (tm *TokenManager) CreateToken(uid string) (string, error) {
	if uid == "" {
		return "", errors.New("uid is required")
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UID: uid,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ValidateToken parses a session token and returns the uid it carries.
func (tm *TokenManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.UID == "" {
		return "", errors.New("could not parse claims")
	}

	return claims.UID, nil
}
