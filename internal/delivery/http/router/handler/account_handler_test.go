package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gst360/internal/delivery/http/middleware"
	"gst360/internal/delivery/http/validator"
	"gst360/internal/domain/entity"
	domainerrors "gst360/internal/domain/errors"
	"gst360/internal/domain/service"
	mockSvc "gst360/internal/mocks/service"
	mockUC "gst360/internal/mocks/usecase"
	"gst360/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testGSTIN = "27AAPFU0939F1ZV"

type handlerFixtures struct {
	echo     *echo.Echo
	uc       *mockUC.MockAccountUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestHandler(t *testing.T) handlerFixtures {
	uc := mockUC.NewMockAccountUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewAccountHandler(uc, logger)
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	users := e.Group("/api/users")
	users.POST("/register", h.Register)
	users.POST("/login", h.Login)
	users.GET("/me", h.GetProfile, authMw.Authenticate)
	users.GET("/:id", h.GetAccount)

	return handlerFixtures{echo: e, uc: uc, tokenSvc: tokenSvc}
}

func doJSON(fx handlerFixtures, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAccountHandler_Register_Success(t *testing.T) {
	fx := createTestHandler(t)

	accountID := uuid.New()
	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{Token: "signed_token", AccountID: accountID}, nil)

	rec := doJSON(fx, http.MethodPost, "/api/users/register", `{
		"name": "Unique Traders",
		"gstNumber": "`+testGSTIN+`",
		"tradeName": "Unique Traders",
		"legalName": "Unique Traders Pvt Ltd",
		"address": {
			"buildingName": "Sai Plaza",
			"street": "MG Road",
			"locality": "Andheri East",
			"buildingNumber": "12",
			"stateCode": "27",
			"postalCode": "400069"
		},
		"password": "Password123!"
	}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Account registered successfully", body["message"])
	assert.Equal(t, "signed_token", body["token"])
	assert.Equal(t, accountID.String(), body["userId"])
}

func TestAccountHandler_Register_MapsRequestFields(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Run(func(ctx context.Context, input *usecase.RegisterInput) {
			assert.Equal(t, "Unique Traders", input.BusinessName)
			assert.Equal(t, testGSTIN, input.GSTIN)
			require.NotNil(t, input.Address)
			assert.Equal(t, "27", input.Address.StateCode)
			assert.Equal(t, "Inactive", input.Status)
		}).
		Return(&usecase.AuthOutput{Token: "signed_token", AccountID: uuid.New()}, nil)

	rec := doJSON(fx, http.MethodPost, "/api/users/register", `{
		"name": "Unique Traders",
		"gstNumber": "`+testGSTIN+`",
		"tradeName": "Unique Traders",
		"legalName": "Unique Traders Pvt Ltd",
		"address": {"stateCode": "27"},
		"status": "Inactive",
		"password": "Password123!"
	}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestAccountHandler_Register_MissingPassword(t *testing.T) {
	fx := createTestHandler(t)

	rec := doJSON(fx, http.MethodPost, "/api/users/register", `{
		"name": "Unique Traders",
		"gstNumber": "`+testGSTIN+`",
		"tradeName": "Unique Traders",
		"legalName": "Unique Traders Pvt Ltd"
	}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errorInfo["code"])
}

func TestAccountHandler_Register_DuplicateGSTIN(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrAccountExists.WrapMessage("gstin already registered"))

	rec := doJSON(fx, http.MethodPost, "/api/users/register", `{
		"name": "Unique Traders",
		"gstNumber": "`+testGSTIN+`",
		"tradeName": "Unique Traders",
		"legalName": "Unique Traders Pvt Ltd",
		"password": "Password123!"
	}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "ACCOUNT_EXISTS", errorInfo["code"])
}

func TestAccountHandler_Login_Success(t *testing.T) {
	fx := createTestHandler(t)

	accountID := uuid.New()
	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Run(func(ctx context.Context, input *usecase.LoginInput) {
			assert.Equal(t, testGSTIN, input.GSTIN)
			assert.True(t, input.RememberMe)
		}).
		Return(&usecase.AuthOutput{Token: "signed_token", AccountID: accountID}, nil)

	rec := doJSON(fx, http.MethodPost, "/api/users/login", `{
		"gstNumber": "`+testGSTIN+`",
		"password": "Password123!",
		"rememberMe": true
	}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "signed_token", body["token"])
	assert.Equal(t, accountID.String(), body["userId"])
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	rec := doJSON(fx, http.MethodPost, "/api/users/login", `{
		"gstNumber": "`+testGSTIN+`",
		"password": "WrongPassword"
	}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "invalid GST number or password", body["message"])
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_CREDENTIALS", errorInfo["code"])
}

func TestAccountHandler_GetAccount_Success(t *testing.T) {
	fx := createTestHandler(t)

	account := &entity.Account{
		ID:           uuid.New(),
		GSTIN:        testGSTIN,
		BusinessName: "Unique Traders",
		TradeName:    "Unique Traders",
		LegalName:    "Unique Traders Pvt Ltd",
		Address: entity.Address{
			StateCode:  "27",
			PostalCode: "400069",
		},
		Status:    entity.StatusActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	fx.uc.EXPECT().
		GetAccount(mock.Anything, account.ID).
		Return(account, nil)

	rec := doJSON(fx, http.MethodGet, "/api/users/"+account.ID.String(), "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, account.ID.String(), body["id"])
	assert.Equal(t, testGSTIN, body["gstNumber"])
	assert.Equal(t, "Active", body["status"])

	address := body["address"].(map[string]any)
	assert.Equal(t, "27", address["stateCode"])

	// The profile body must never carry password material.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAccountHandler_GetAccount_NotFound(t *testing.T) {
	fx := createTestHandler(t)

	id := uuid.New()
	fx.uc.EXPECT().
		GetAccount(mock.Anything, id).
		Return(nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found"))

	rec := doJSON(fx, http.MethodGet, "/api/users/"+id.String(), "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "ACCOUNT_NOT_FOUND", errorInfo["code"])
}

func TestAccountHandler_GetAccount_MalformedID(t *testing.T) {
	fx := createTestHandler(t)

	rec := doJSON(fx, http.MethodGet, "/api/users/not-a-uuid", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountHandler_GetProfile_Success(t *testing.T) {
	fx := createTestHandler(t)

	accountID := uuid.New()
	fx.tokenSvc.EXPECT().
		ValidateToken("signed_token").
		Return(&service.Claims{AccountID: accountID}, nil)

	fx.uc.EXPECT().
		GetAccount(mock.Anything, accountID).
		Return(&entity.Account{ID: accountID, GSTIN: testGSTIN, Status: entity.StatusActive}, nil)

	rec := doJSON(fx, http.MethodGet, "/api/users/me", "", map[string]string{
		"Authorization": "Bearer signed_token",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, accountID.String(), body["id"])
}

func TestAccountHandler_GetProfile_MissingToken(t *testing.T) {
	fx := createTestHandler(t)

	rec := doJSON(fx, http.MethodGet, "/api/users/me", "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "TOKEN_MISSING", errorInfo["code"])
}

func TestAccountHandler_GetProfile_InvalidToken(t *testing.T) {
	fx := createTestHandler(t)

	fx.tokenSvc.EXPECT().
		ValidateToken("bad_token").
		Return(nil, errors.New("token is expired"))

	rec := doJSON(fx, http.MethodGet, "/api/users/me", "", map[string]string{
		"Authorization": "Bearer bad_token",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	errorInfo := body["error"].(map[string]any)
	assert.Equal(t, "TOKEN_INVALID", errorInfo["code"])
}

// Unclassified errors must answer with a generic message, never the raw cause.
func TestAccountHandler_InternalErrorDoesNotLeak(t *testing.T) {
	fx := createTestHandler(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.New("pq: connection refused on 10.0.0.7"))

	rec := doJSON(fx, http.MethodPost, "/api/users/login", `{
		"gstNumber": "`+testGSTIN+`",
		"password": "Password123!"
	}`, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
	body := decodeBody(t, rec)
	assert.Equal(t, "internal server error", body["message"])
}
