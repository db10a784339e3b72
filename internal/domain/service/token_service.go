package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionTokenTTL is the fixed lifetime of tokens issued at
	// registration and at login without the remember-me flag.
	SessionTokenTTL = time.Hour

	// RememberMeTokenTTL is the extended lifetime of tokens issued at
	// login when the remember-me flag is set.
	RememberMeTokenTTL = 7 * 24 * time.Hour
)

// Claims defines the custom claims carried by issued bearer tokens.
type Claims struct {
	AccountID uuid.UUID `json:"accountId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer
// tokens. Tokens are self-contained: verified by signature and expiry, never
// looked up server-side.
type TokenService interface {
	// IssueToken creates a signed token with the account id as its subject
	// and the given time-to-live.
	IssueToken(accountID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
