package impl

import (
	"io"
	"log/slog"
	"testing"

	"gst360/internal/domain/entity"
	mockRepo "gst360/internal/mocks/repository"
	mockSvc "gst360/internal/mocks/service"
	"gst360/internal/usecase"

	"github.com/google/uuid"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		BusinessName: "Unique Traders",
		GSTIN:        "27AAPFU0939F1ZV",
		TradeName:    "Unique Traders",
		LegalName:    "Unique Traders Pvt Ltd",
		Address: &entity.Address{
			BuildingName:   "Sai Plaza",
			Street:         "MG Road",
			Locality:       "Andheri East",
			BuildingNumber: "12",
			StateCode:      "27",
			PostalCode:     "400069",
		},
		Password: "Password123!",
	}
}

func loginInput(gstin, password string, rememberMe bool) *usecase.LoginInput {
	return &usecase.LoginInput{
		GSTIN:      gstin,
		Password:   password,
		RememberMe: rememberMe,
	}
}

func storedAccount(gstin, passwordHash string) *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		GSTIN:        gstin,
		BusinessName: "Unique Traders",
		TradeName:    "Unique Traders",
		LegalName:    "Unique Traders Pvt Ltd",
		Status:       entity.StatusActive,
		PasswordHash: passwordHash,
	}
}
