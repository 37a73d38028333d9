package errors

import (
	"net/http"

	"arena/internal/domain/entity"
	"arena/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ACCOUNT_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)

	// HTTPStatus is the status the error renders with; it never leaves the process.
	HTTPStatus int `json:"-"`
}

// AsAppError finds the AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// KindOf classifies err into the closed result kind set.
// Errors that carry no kind are reported as INTERNAL_ERROR.
func KindOf(err error) entity.ResultCode {
	if err == nil {
		return entity.ResultSuccess
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind()
	}

	return entity.ResultInternalError
}

// InfoOf describes err for callers. Details of server-side failures are withheld.
func InfoOf(err error) *ErrorInfo {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = ErrInternalError
	}

	info := &ErrorInfo{
		Code:       appErr.ErrorCode(),
		HTTPStatus: appErr.HTTPCode(),
	}
	if appErr.HTTPCode() < http.StatusInternalServerError {
		info.Details = appErr.Details()
	}

	return info
}

// ToResponse converts an operation error into its DbResponse envelope.
// Data carries the *ErrorInfo of the failure.
func ToResponse(err error) entity.DbResponse {
	return entity.DbResponse{
		Code: KindOf(err),
		Data: InfoOf(err),
	}
}
