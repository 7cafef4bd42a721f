package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing login tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for username.
	GenerateToken(ctx context.Context, username string) (Token, error)

	// ValidateToken validates the provided access token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Token is a signed access token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Claims represents the claims carried by a validated token.
type Claims struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
