// Package middleware holds echo middleware specific to the HTTP API.
package middleware

import (
	"strings"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a session token.
type AuthMiddleware struct {
	tokens service.SessionTokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.SessionTokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token and stores its claims on the request context.
// Tokens still waiting for their second factor are refused.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization must be a bearer token")
		}

		claims, err := m.tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			return err
		}
		if claims.Pending {
			return domainerrors.ErrTOTPRequired.WithDetails("complete the login with a one-time code first")
		}

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithSession(req.Context(), claims)))

		return next(c)
	}
}

// Claims returns the claims stored by Authenticate.
func Claims(c echo.Context) (*entity.SessionClaims, error) {
	claims, ok := deliverycontext.Session(c.Request().Context())
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
