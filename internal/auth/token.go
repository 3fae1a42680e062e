// Package auth issues and verifies bearer tokens and hashes user passwords
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens
var ErrInvalidToken = errors.New("invalid token")

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
	}
}

// Issue creates a signed token binding userID until the configured expiry
func (tg *TokenGenerator) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(tg.tokenExpiry).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a token and returns the user ID bound to it.
// Every failure wraps ErrInvalidToken.
func (tg *TokenGenerator) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: invalid token claims", ErrInvalidToken)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: user_id not found in token", ErrInvalidToken)
	}

	return userID, nil
}
