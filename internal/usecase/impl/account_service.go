// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gst360/internal/delivery/context"
	"gst360/internal/domain/entity"
	domainerrors "gst360/internal/domain/errors"
	"gst360/internal/domain/repository"
	"gst360/internal/domain/service"
	"gst360/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process: input
// validation, the duplicate pre-check, password hashing, the single durable
// write, and token issuance with the fixed session lifetime.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("gstin", input.GSTIN))

	status, err := validateRegisterInput(input)
	if err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("gstin", input.GSTIN), slog.Any("error", err))

		return nil, err
	}

	// Friendly pre-check; the unique index remains the authority under races.
	_, err = srv.accountRepo.FindByGSTIN(ctx, input.GSTIN)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, gstin already exists", slog.String("gstin", input.GSTIN))

		return nil, domainerrors.ErrAccountExists.WrapMessage("gstin already registered")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.log(ctx).Error("Failed to check existing account", slog.String("gstin", input.GSTIN), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check existing account")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	account := &entity.Account{
		GSTIN:        input.GSTIN,
		BusinessName: input.BusinessName,
		TradeName:    input.TradeName,
		LegalName:    input.LegalName,
		Status:       status,
		PasswordHash: passwordHash,
	}
	if input.Address != nil {
		account.Address = *input.Address
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("gstin", input.GSTIN), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	token, err := srv.tokenService.IssueToken(account.ID, service.SessionTokenTTL)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Token: token, AccountID: account.ID}, nil
}

// Login orchestrates the account login process. Unknown GST numbers and
// wrong passwords produce the same classification so callers cannot
// enumerate accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("gstin", input.GSTIN))

	if input.GSTIN == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("gstin and password are required")
	}

	account, err := srv.accountRepo.FindByGSTIN(ctx, input.GSTIN)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("gstin", input.GSTIN))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.log(ctx).Error("Failed to load account for login", slog.String("gstin", input.GSTIN), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt comparison is CPU-bound; it blocks only this request's goroutine.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("gstin", input.GSTIN))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	ttl := service.SessionTokenTTL
	if input.RememberMe {
		ttl = service.RememberMeTokenTTL
	}

	token, err := srv.tokenService.IssueToken(account.ID, ttl)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token at login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Token: token, AccountID: account.ID}, nil
}

// GetAccount retrieves the profile projection for one account. The password
// hash never leaves the repository on this path.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}
		srv.log(ctx).Error("Failed to load account", slog.Any("accountID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// validateRegisterInput enforces the required registration fields and the
// closed status enum. It returns the resolved status so the caller does not
// re-parse it.
func validateRegisterInput(input *usecase.RegisterInput) (entity.Status, error) {
	switch {
	case input.BusinessName == "":
		return "", domainerrors.ErrValidationFailed.WrapMessage("name is required")
	case input.GSTIN == "":
		return "", domainerrors.ErrValidationFailed.WrapMessage("gstNumber is required")
	case input.TradeName == "":
		return "", domainerrors.ErrValidationFailed.WrapMessage("tradeName is required")
	case input.LegalName == "":
		return "", domainerrors.ErrValidationFailed.WrapMessage("legalName is required")
	case input.Password == "":
		return "", domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	status, ok := entity.ParseStatus(input.Status)
	if !ok {
		return "", domainerrors.ErrValidationFailed.WrapMessage("status must be Active or Inactive")
	}

	return status, nil
}
