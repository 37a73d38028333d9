// Package response renders every HTTP reply in one envelope.
package response

import (
	"net/http"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                    `json:"success"`
	Code    entity.ResultCode       `json:"code"`
	Message string                  `json:"message"`
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// StatusForKind maps a result kind onto its HTTP status.
func StatusForKind(kind entity.ResultCode) int {
	switch kind {
	case entity.ResultSuccess:
		return http.StatusOK
	case entity.ResultAlreadyExists:
		return http.StatusConflict
	case entity.ResultNotFound:
		return http.StatusNotFound
	case entity.ResultProviderError:
		return http.StatusBadGateway
	case entity.ResultDecodeError, entity.ResultValidationFailed:
		return http.StatusBadRequest
	case entity.ResultUnauthorized, entity.ResultInvalidCredentials:
		return http.StatusUnauthorized
	case entity.ResultForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Success successful response
func Success(c echo.Context, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    entity.ResultSuccess,
		Message: message,
		Data:    data,
	})
}

// FromDbResponse renders an identity operation result. A failure carrying an
// *ErrorInfo keeps the status of the error it was built from.
func FromDbResponse(c echo.Context, resp entity.DbResponse) error {
	if resp.OK() {
		return c.JSON(http.StatusOK, Response{
			Success: true,
			Code:    resp.Code,
			Message: "Success",
			Data:    resp.Data,
		})
	}

	status := StatusForKind(resp.Code)
	info, ok := resp.Data.(*domainerrors.ErrorInfo)
	if !ok {
		info = &domainerrors.ErrorInfo{Code: string(resp.Code)}
	}
	if info.HTTPStatus != 0 {
		status = info.HTTPStatus
	}

	return c.JSON(status, Response{
		Success: false,
		Code:    resp.Code,
		Message: http.StatusText(status),
		Error:   info,
	})
}

// AppError renders a domain error. Details of 5xx errors stay in the logs.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), Response{
		Success: false,
		Code:    appErr.Kind(),
		Message: appErr.Message(),
		Error:   domainerrors.InfoOf(appErr),
	})
}

// Error renders an error without a domain kind.
func Error(c echo.Context, status int, errorCode, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	kind := entity.ResultInternalError
	switch status {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		kind = entity.ResultNotFound
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		kind = entity.ResultValidationFailed
	case http.StatusUnauthorized:
		kind = entity.ResultUnauthorized
	case http.StatusForbidden:
		kind = entity.ResultForbidden
	}

	return c.JSON(status, Response{
		Success: false,
		Code:    kind,
		Message: message,
		Error:   &domainerrors.ErrorInfo{Code: errorCode},
	})
}
