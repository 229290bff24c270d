package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an admin session token stays valid after issuance.
const TokenTTL = 2 * time.Hour

const roleAdmin = "admin"

// ErrInvalidToken is the single failure every verification problem collapses
// to. Callers must not learn whether a token was missing, malformed, expired,
// or signed with the wrong key.
var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	jwt.RegisteredClaims

	Role     string `json:"role"`
	Username string `json:"username"`
}

// IssueToken signs an HS256 admin session token for username, valid for
// TokenTTL from now.
func IssueToken(secret, username string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Role:     roleAdmin,
		Username: username,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyToken verifies the signature and expiry of an admin session token.
func VerifyToken(tokenString, secret string, now time.Time) (*Claims, error) {
	if tokenString == "" || secret == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	claims := &Claims{}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != roleAdmin {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
