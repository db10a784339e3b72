// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gst360/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new business account.
type RegisterInput struct {
	BusinessName string
	GSTIN        string
	TradeName    string
	LegalName    string
	Address      *entity.Address // Optional; a nil address persists as six empty strings.
	Status       string          // Optional; empty defaults to Active, anything else must be a valid Status.
	Password     string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	GSTIN      string
	Password   string
	RememberMe bool
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token and the account it is scoped to.
// Registration and login share this shape.
type AuthOutput struct {
	Token     string
	AccountID uuid.UUID
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}
