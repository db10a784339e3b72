// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "gst360/internal/delivery/context"
	"gst360/internal/delivery/http/response"
	"gst360/internal/domain/entity"
	domainerrors "gst360/internal/domain/errors"
	"gst360/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request/response DTOs ---

type registerRequest struct {
	Name      string          `json:"name" validate:"required"`
	GSTNumber string          `json:"gstNumber" validate:"required"`
	TradeName string          `json:"tradeName" validate:"required"`
	LegalName string          `json:"legalName" validate:"required"`
	Address   *addressPayload `json:"address"`
	Status    string          `json:"status"`
	Password  string          `json:"password" validate:"required"`
}

type loginRequest struct {
	GSTNumber  string `json:"gstNumber" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type addressPayload struct {
	BuildingName   string `json:"buildingName"`
	Street         string `json:"street"`
	Locality       string `json:"locality"`
	BuildingNumber string `json:"buildingNumber"`
	StateCode      string `json:"stateCode"`
	PostalCode     string `json:"postalCode"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

// accountResponse is the profile projection. There is deliberately no field
// for anything password-derived.
type accountResponse struct {
	ID           string         `json:"id"`
	GSTNumber    string         `json:"gstNumber"`
	BusinessName string         `json:"businessName"`
	TradeName    string         `json:"tradeName"`
	LegalName    string         `json:"legalName"`
	Address      addressPayload `json:"address"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:           account.ID.String(),
		GSTNumber:    account.GSTIN,
		BusinessName: account.BusinessName,
		TradeName:    account.TradeName,
		LegalName:    account.LegalName,
		Address: addressPayload{
			BuildingName:   account.Address.BuildingName,
			Street:         account.Address.Street,
			Locality:       account.Address.Locality,
			BuildingNumber: account.Address.BuildingNumber,
			StateCode:      account.Address.StateCode,
			PostalCode:     account.Address.PostalCode,
		},
		Status:    account.Status.String(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// --- Handlers ---

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.RegisterInput{
		BusinessName: req.Name,
		GSTIN:        req.GSTNumber,
		TradeName:    req.TradeName,
		LegalName:    req.LegalName,
		Status:       req.Status,
		Password:     req.Password,
	}
	if req.Address != nil {
		input.Address = &entity.Address{
			BuildingName:   req.Address.BuildingName,
			Street:         req.Address.Street,
			Locality:       req.Address.Locality,
			BuildingNumber: req.Address.BuildingNumber,
			StateCode:      req.Address.StateCode,
			PostalCode:     req.Address.PostalCode,
		}
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authResponse{
		Message: "Account registered successfully",
		Token:   output.Token,
		UserID:  output.AccountID.String(),
	})
}

// Login handles the account login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		GSTIN:      req.GSTNumber,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   output.Token,
		UserID:  output.AccountID.String(),
	})
}

// GetAccount handles the request for one account's profile by id.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot name any account.
		return errors.WithStack(domainerrors.ErrAccountNotFound.WrapMessage("malformed account id"))
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// GetProfile handles the request for the authenticated account's own profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountIDVal := c.Get(string(deliverycontext.KeyAccountID))
	accountID, ok := accountIDVal.(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid account ID in token")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
