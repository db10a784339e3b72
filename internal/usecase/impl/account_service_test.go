package impl

import (
	"context"
	"testing"

	"gst360/internal/domain/entity"
	"gst360/internal/domain/repository"
	"gst360/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByGSTIN(ctx, input.GSTIN).
		Return(nil, repository.ErrAccountNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, input.GSTIN, account.GSTIN)
			assert.Equal(t, "hashed_password", account.PasswordHash)
			assert.Equal(t, entity.StatusActive, account.Status)
			assert.Equal(t, *input.Address, account.Address)
			account.ID = accountID
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueToken(accountID, service.SessionTokenTTL).
		Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, accountID, output.AccountID)
}

func TestAccountService_Register_DefaultsStatusToActive(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := validRegisterInput()
	input.Status = ""
	input.Address = nil

	fx.accountRepo.EXPECT().
		FindByGSTIN(ctx, input.GSTIN).
		Return(nil, repository.ErrAccountNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, entity.StatusActive, account.Status)
			assert.Equal(t, entity.Address{}, account.Address)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueToken(mock.AnythingOfType("uuid.UUID"), service.SessionTokenTTL).
		Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := storedAccount("27AAPFU0939F1ZV", "hashed_password")

	fx.accountRepo.EXPECT().
		FindByGSTIN(ctx, account.GSTIN).
		Return(account, nil)

	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	fx.tokenService.EXPECT().
		IssueToken(account.ID, service.SessionTokenTTL).
		Return("signed_token", nil)

	output, err := fx.service.Login(ctx, loginInput(account.GSTIN, "Password123!", false))

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, account.ID, output.AccountID)
}

func TestAccountService_Login_RememberMeExtendsTokenLifetime(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := storedAccount("27AAPFU0939F1ZV", "hashed_password")

	fx.accountRepo.EXPECT().
		FindByGSTIN(ctx, account.GSTIN).
		Return(account, nil)

	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)

	fx.tokenService.EXPECT().
		IssueToken(account.ID, service.RememberMeTokenTTL).
		Return("signed_token", nil)

	output, err := fx.service.Login(ctx, loginInput(account.GSTIN, "Password123!", true))

	require.NoError(t, err)
	assert.Equal(t, "signed_token", output.Token)
}

func TestAccountService_GetAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := storedAccount("27AAPFU0939F1ZV", "")

	fx.accountRepo.EXPECT().
		FindByID(ctx, account.ID).
		Return(account, nil)

	found, err := fx.service.GetAccount(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.GSTIN, found.GSTIN)
	assert.Empty(t, found.PasswordHash)
}
