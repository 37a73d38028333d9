package errors

import (
	"net/http"
	"testing"

	"arena/internal/domain/entity"
	"arena/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entity.ResultCode
	}{
		{"nil is success", nil, entity.ResultSuccess},
		{"predefined", ErrAccountNotFound, entity.ResultNotFound},
		{"wrapped", ErrProviderFailed.WrapMessage("exchange"), entity.ResultProviderError},
		{"detailed copy", ErrDecodeFailed.WithDetails("bad padding"), entity.ResultDecodeError},
		{"storage", NewDatabaseExecuteError(errors.New("conn reset"), "find"), entity.ResultStorageError},
		{"plain error", errors.New("boom"), entity.ResultInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	err := errors.Wrap(ErrInvalidTOTPCode.WithDetails("step 123"), "login")

	assert.True(t, errors.Is(err, ErrInvalidTOTPCode))
	assert.False(t, errors.Is(err, ErrTOTPRequired))
	assert.Equal(t, "invalid one-time code: step 123", ErrInvalidTOTPCode.WithDetails("step 123").Error())
}

func TestToResponse(t *testing.T) {
	resp := ToResponse(errors.Wrap(ErrOAuthStateInvalid.WithDetails("state was issued for another provider"), "callback"))

	assert.Equal(t, entity.ResultProviderError, resp.Code)
	assert.False(t, resp.OK())
	require.IsType(t, &ErrorInfo{}, resp.Data)
	assert.Equal(t, &ErrorInfo{
		Code:       "OAUTH_STATE_INVALID",
		Details:    "state was issued for another provider",
		HTTPStatus: http.StatusBadRequest,
	}, resp.Data)
}

func TestToResponse_WithholdsServerDetails(t *testing.T) {
	resp := ToResponse(NewDatabaseExecuteError(errors.New("connection refused"), "find account"))

	assert.Equal(t, entity.ResultStorageError, resp.Code)
	assert.Equal(t, &ErrorInfo{Code: "DATABASE_EXECUTE_FAILED", HTTPStatus: http.StatusInternalServerError}, resp.Data)

	resp = ToResponse(errors.New("boom"))
	assert.Equal(t, entity.ResultInternalError, resp.Code)
	assert.Equal(t, &ErrorInfo{Code: "INTERNAL_ERROR", HTTPStatus: http.StatusInternalServerError}, resp.Data)
}
