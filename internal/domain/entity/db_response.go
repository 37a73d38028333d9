package entity

// ResultCode is the closed set of outcomes reported by identity operations.
type ResultCode string

const (
	ResultSuccess            ResultCode = "SUCCESS"
	ResultAlreadyExists      ResultCode = "ALREADY_EXISTS"
	ResultNotFound           ResultCode = "NOT_FOUND"
	ResultProviderError      ResultCode = "PROVIDER_ERROR"
	ResultStorageError       ResultCode = "STORAGE_ERROR"
	ResultDecodeError        ResultCode = "DECODE_ERROR"
	ResultUnauthorized       ResultCode = "UNAUTHORIZED"
	ResultInvalidCredentials ResultCode = "INVALID_CREDENTIALS"
	ResultValidationFailed   ResultCode = "VALIDATION_FAILED"
	ResultForbidden          ResultCode = "FORBIDDEN"
	ResultInternalError      ResultCode = "INTERNAL_ERROR"
)

// DbResponse is the envelope returned by the identity resolver and federation flow.
type DbResponse struct {
	Code ResultCode `json:"code"`
	Data any        `json:"data"`
}

// Success wraps data in a SUCCESS envelope.
func Success(data any) DbResponse {
	return DbResponse{Code: ResultSuccess, Data: data}
}

// Failure returns an envelope with the given kind and no data.
func Failure(code ResultCode) DbResponse {
	return DbResponse{Code: code}
}

// OK reports whether the response carries ResultSuccess.
func (r DbResponse) OK() bool {
	return r.Code == ResultSuccess
}
