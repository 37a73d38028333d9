// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"

	"arena/internal/delivery/http/response"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	FederationUC usecase.FederationUsecase
	Logger       *slog.Logger
}

// OAuthHandler serves the redirect and callback routes of every provider.
type OAuthHandler struct {
	federationUC usecase.FederationUsecase
	logger       *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		federationUC: params.FederationUC,
		logger:       params.Logger,
	}
}

// CallbackQuery is what the provider appends to the redirect URI.
type CallbackQuery struct {
	Code  string `query:"code"`
	State string `query:"state"`
	Error string `query:"error"`
}

// Start redirects the browser to the provider's consent page.
func (h *OAuthHandler) Start(c echo.Context) error {
	source, err := sourceParam(c)
	if err != nil {
		return err
	}

	url, err := h.federationUC.StartLogin(c.Request().Context(), source)
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, url)
}

// Callback completes the login and returns the session.
func (h *OAuthHandler) Callback(c echo.Context) error {
	source, err := sourceParam(c)
	if err != nil {
		return err
	}

	var query CallbackQuery
	if err := c.Bind(&query); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid callback query")
	}
	if query.Error != "" {
		// The user denied consent; the state is left to expire.
		query.Code = ""
	}

	resp := h.federationUC.CompleteLogin(c.Request().Context(), usecase.CallbackInput{
		Source: source,
		State:  query.State,
		Code:   query.Code,
	})

	return response.FromDbResponse(c, resp)
}

func sourceParam(c echo.Context) (entity.AuthSource, error) {
	source, ok := entity.AuthSourceFromRoute(c.Param("provider"))
	if !ok {
		return "", domainerrors.ErrUnsupportedProvider.WithDetails(c.Param("provider"))
	}

	return source, nil
}
