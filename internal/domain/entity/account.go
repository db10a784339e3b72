// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the sole durable entity of the credential subsystem. It
// represents one registered business, keyed by its GST registration number.
type Account struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the account, assigned by the store.
	GSTIN        string    // The business tax-registration number; globally unique and used as the login key.
	BusinessName string    // The registered business name shown on the dashboard.
	TradeName    string    // The name the business trades under.
	LegalName    string    // The legal name on the GST registration.
	Address      Address   // The principal place of business. Always fully populated, possibly with empty strings.
	Status       Status    // Active or Inactive. Defaults to Active at registration.
	PasswordHash string    // The salted bcrypt digest of the account password. Never serialized to clients.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Address is the principal-place-of-business value object. Once an account
// exists all six fields are present, empty strings included, never a subset.
type Address struct {
	BuildingName   string
	Street         string
	Locality       string
	BuildingNumber string
	StateCode      string
	PostalCode     string
}
