package handler

import (
	"log/slog"

	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/response"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TOTPHandlerParams holds dependencies for TOTPHandler, injected by Fx.
type TOTPHandlerParams struct {
	fx.In

	TOTPUC usecase.TOTPUsecase
	Logger *slog.Logger
}

// TOTPHandler serves second factor management. Callers may only act on their own account.
type TOTPHandler struct {
	totpUC usecase.TOTPUsecase
	logger *slog.Logger
}

// NewTOTPHandler is the constructor for TOTPHandler
func NewTOTPHandler(params TOTPHandlerParams) *TOTPHandler {
	return &TOTPHandler{
		totpUC: params.TOTPUC,
		logger: params.Logger,
	}
}

// AccountRequest names the account a TOTP operation applies to. Code is the
// current one-time code, required once the second factor is enabled.
type AccountRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Code   string `json:"code" validate:"omitempty,numeric,len=6"`
}

// ValidateRequest carries a code to check.
type ValidateRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Code   string `json:"code" validate:"required,numeric,len=6"`
}

// Reset enrolls the caller, replacing any previous seed.
func (h *TOTPHandler) Reset(c echo.Context) error {
	var req AccountRequest
	accountID, err := h.bindOwnAccount(c, &req, func() string { return req.UserID })
	if err != nil {
		return err
	}

	enrollment, err := h.totpUC.Enroll(c.Request().Context(), accountID, req.Code)
	if err != nil {
		return err
	}

	return response.Success(c, enrollment, "Two-factor authentication enabled")
}

// Validate checks a code against the caller's seed.
func (h *TOTPHandler) Validate(c echo.Context) error {
	var req ValidateRequest
	accountID, err := h.bindOwnAccount(c, &req, func() string { return req.UserID })
	if err != nil {
		return err
	}

	if err := h.totpUC.Validate(c.Request().Context(), accountID, req.Code); err != nil {
		return err
	}

	return response.Success(c, nil, "Code accepted")
}

// Remove disables the caller's second factor.
func (h *TOTPHandler) Remove(c echo.Context) error {
	var req AccountRequest
	accountID, err := h.bindOwnAccount(c, &req, func() string { return req.UserID })
	if err != nil {
		return err
	}

	if err := h.totpUC.Remove(c.Request().Context(), accountID, req.Code); err != nil {
		return err
	}

	return response.Success(c, nil, "Two-factor authentication disabled")
}

// bindOwnAccount binds and validates req, then checks that it targets the caller.
func (h *TOTPHandler) bindOwnAccount(c echo.Context, req any, userID func() string) (uuid.UUID, error) {
	claims, err := middleware.Claims(c)
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.Bind(req); err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return uuid.Nil, err
	}

	accountID, err := uuid.Parse(userID())
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("user_id is not a uuid")
	}
	if accountID != claims.AccountID {
		h.logger.Warn("TOTP request for another account",
			slog.String("caller", claims.AccountID.String()),
			slog.String("target", accountID.String()),
		)

		return uuid.Nil, domainerrors.ErrForbidden
	}

	return accountID, nil
}
