// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gst360/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID. The returned
	// projection excludes the password hash.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByGSTIN retrieves a single account by its GST registration
	// number, including the password hash for credential comparison.
	FindByGSTIN(ctx context.Context, gstin string) (*entity.Account, error)

	// Create persists a new account. Uniqueness of the GSTIN is enforced
	// by the store itself so that only one of two racing inserts succeeds.
	Create(ctx context.Context, account *entity.Account) error
}
