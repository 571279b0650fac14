package domain

import (
	"errors"
	"time"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Principal is the authenticated caller. UserID is never empty for a verified token.
type Principal struct {
	UserID string
	Email  string
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its principal. Failures wrap
// ErrTokenExpired or ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (Principal, error)
}
