package middleware

import (
	"net/http"
	"strings"

	deliverycontext "gst360/internal/delivery/context"
	"gst360/internal/delivery/http/response"
	"gst360/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the account id on the
// request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_MISSING", "Authorization header is missing", "")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_MALFORMED", "Invalid token format, must be Bearer token", "")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_INVALID", "Invalid or expired token", "")
		}

		// Set account info on the context for handlers to use
		c.Set(string(deliverycontext.KeyAccountID), claims.AccountID)

		return next(c)
	}
}
