package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"gst360/config"
	"gst360/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Signing = "test_signing_secret_key_very_long_for_testing"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewJWTService(cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc
}

func TestJWTService_IssueAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	accountID := uuid.New()

	token, err := svc.IssueToken(accountID, service.SessionTokenTTL)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_SessionTokenExpiry(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.IssueToken(uuid.New(), service.SessionTokenTTL)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 60)
}

func TestJWTService_RememberMeTokenExpiry(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.IssueToken(uuid.New(), service.RememberMeTokenTTL)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), ttl.Seconds(), 60)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.IssueToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.IssueToken(uuid.New(), service.SessionTokenTTL)
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Signing = "a_completely_different_signing_secret"
	other, err := NewJWTService(otherCfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
