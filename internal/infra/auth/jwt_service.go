// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gst360/config"
	"gst360/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte // Process-wide signing secret for HS256.
}

// NewJWTService is the constructor for jwtService. The signing secret comes
// from the config object built at process start; the insecure fallback is
// reported as a misconfiguration rather than accepted silently.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := cfg.SecretKey.Signing
	if secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if secret == config.InsecureDefaultSigningSecret {
		logger.Error("JWT signing secret is the insecure default; set SECRETKEY_SIGNING before deploying")
	}

	return &jwtService{secret: []byte(secret)}, nil
}

// IssueToken creates a signed token with the account id as its subject claim.
func (s *jwtService) IssueToken(accountID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := service.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature and expiry of a token string and returns
// its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.AccountID == uuid.Nil {
		accountID, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil {
			return nil, errors.Wrap(parseErr, "token subject is not an account id")
		}
		claims.AccountID = accountID
	}

	return claims, nil
}
