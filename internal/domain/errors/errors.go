package errors

import (
	"net/http"

	"arena/internal/domain/entity"
	"arena/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int            // HTTP status code
	Kind() entity.ResultCode  // Closed outcome kind carried in DbResponse
	ErrorCode() string        // Business error code
	Message() string          // User-facing message
	Details() string          // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	kind      entity.ResultCode
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, kind entity.ResultCode, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError with the same error code, so detailed copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int { return e.httpCode }
func (e *BaseError) Kind() entity.ResultCode { return e.kind }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string { return e.message }
func (e *BaseError) Details() string { return e.details }

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// Predefined error types
var (
	// Account errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		entity.ResultNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		entity.ResultAlreadyExists,
		"ACCOUNT_ALREADY_EXISTS",
		"account already exists",
	)

	// Federation errors
	ErrUnsupportedProvider = NewBaseError(
		http.StatusNotFound,
		entity.ResultNotFound,
		"UNSUPPORTED_PROVIDER",
		"identity provider is not supported",
	)

	ErrProviderFailed = NewBaseError(
		http.StatusBadGateway,
		entity.ResultProviderError,
		"PROVIDER_ERROR",
		"identity provider request failed",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		entity.ResultProviderError,
		"OAUTH_STATE_INVALID",
		"invalid or expired oauth state",
	)

	// Session errors
	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		entity.ResultUnauthorized,
		"SESSION_TOKEN_INVALID",
		"invalid or expired session token",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		entity.ResultUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
	)

	// Second factor errors
	ErrTOTPRequired = NewBaseError(
		http.StatusUnauthorized,
		entity.ResultInvalidCredentials,
		"TOTP_REQUIRED",
		"a one-time code is required",
	)

	ErrInvalidTOTPCode = NewBaseError(
		http.StatusUnauthorized,
		entity.ResultInvalidCredentials,
		"TOTP_INVALID",
		"invalid one-time code",
	)

	ErrTOTPNotEnrolled = NewBaseError(
		http.StatusNotFound,
		entity.ResultNotFound,
		"TOTP_NOT_ENROLLED",
		"two-factor authentication is not enabled",
	)

	// Codec errors
	ErrDecodeFailed = NewBaseError(
		http.StatusBadRequest,
		entity.ResultDecodeError,
		"DECODE_ERROR",
		"malformed encoded input",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		entity.ResultValidationFailed,
		"VALIDATION_FAILED",
		"input validation failed",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		entity.ResultForbidden,
		"FORBIDDEN",
		"access denied",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		entity.ResultInternalError,
		"INTERNAL_ERROR",
		"internal server error",
	)
)

// DatabaseExecuteError represents a storage failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a storage-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) Kind() entity.ResultCode { return entity.ResultStorageError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string { return e.details }
