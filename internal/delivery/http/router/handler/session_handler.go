package handler

import (
	"log/slog"

	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/response"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// SessionHandler serves login, logout and the current session.
type SessionHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// LoginRequest is the second login step. Token is the session token returned by the callback.
type LoginRequest struct {
	Token string `json:"token" validate:"required"`
	TOTP  string `json:"totp" validate:"omitempty,numeric,len=6"`
}

// Login verifies the session token and the second factor.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid login body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp := h.identityUC.Login(c.Request().Context(), usecase.LoginInput{
		Token:    req.Token,
		TOTPCode: req.TOTP,
	})

	return response.FromDbResponse(c, resp)
}

// Logout clears the login flag of the caller.
func (h *SessionHandler) Logout(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	return response.FromDbResponse(c, h.identityUC.Logout(c.Request().Context(), claims.AccountID))
}

// Current returns the caller's profile.
func (h *SessionHandler) Current(c echo.Context) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return err
	}

	return response.FromDbResponse(c, h.identityUC.Profile(c.Request().Context(), claims.AccountID))
}
