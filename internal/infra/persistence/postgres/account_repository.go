// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gst360/internal/domain/entity"
	domainerrors "gst360/internal/domain/errors"
	"gst360/internal/domain/repository"
	"gst360/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID. The password hash is
// stripped from the returned projection; this read path feeds profile
// responses and must never expose credential material.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	account := toAccountDomain(&accountM)
	account.PasswordHash = ""

	return account, nil
}

// FindByGSTIN retrieves a single account by its GST registration number. The
// hash is retained because this lookup feeds the login comparison.
func (repo *accountRepository) FindByGSTIN(ctx context.Context, gstin string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("gstin = ?", gstin).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by gstin")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique index on gstin is the authority
// on duplicates: of two racing inserts the loser comes back here as a unique
// violation and is surfaced as ErrAccountExists, not a generic failure.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountExists.WrapMessage("gstin already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid account status")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		GSTIN:        data.GSTIN,
		BusinessName: data.BusinessName,
		TradeName:    data.TradeName,
		LegalName:    data.LegalName,
		Address: entity.Address{
			BuildingName:   data.Address.BuildingName,
			Street:         data.Address.Street,
			Locality:       data.Address.Locality,
			BuildingNumber: data.Address.BuildingNumber,
			StateCode:      data.Address.StateCode,
			PostalCode:     data.Address.PostalCode,
		},
		Status:       entity.Status(data.Status),
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		GSTIN:        data.GSTIN,
		BusinessName: data.BusinessName,
		TradeName:    data.TradeName,
		LegalName:    data.LegalName,
		Address: model.AddressModel{
			BuildingName:   data.Address.BuildingName,
			Street:         data.Address.Street,
			Locality:       data.Address.Locality,
			BuildingNumber: data.Address.BuildingNumber,
			StateCode:      data.Address.StateCode,
			PostalCode:     data.Address.PostalCode,
		},
		Status:       data.Status.String(),
		PasswordHash: data.PasswordHash,
	}
}
