package totp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"arena/config"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32 of the ASCII key "12345678901234567890" from RFC 6238 appendix B
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func newTestEngine() *engine {
	cfg := &config.Config{}
	cfg.TOTP.Issuer = "Transcendence"

	return NewEngine(cfg).(*engine)
}

func TestGenerateCode_RFC6238Vectors(t *testing.T) {
	// SHA1 vectors truncated to the last six digits
	tests := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
		{20000000000, "353130"},
	}

	e := newTestEngine()
	for _, tt := range tests {
		got, err := e.GenerateCode(rfcSecret, time.Unix(tt.unix, 0))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "unix=%d", tt.unix)
	}
}

func TestGenerateCode_StableWithinStep(t *testing.T) {
	e := newTestEngine()
	start := time.Unix(1_700_000_010, 0) // step boundary at ...010

	first, err := e.GenerateCode(rfcSecret, start)
	require.NoError(t, err)
	last, err := e.GenerateCode(rfcSecret, start.Add(29*time.Second))
	require.NoError(t, err)

	assert.Equal(t, first, last)
	assert.Len(t, first, 6)
}

func TestGenerateCode_MalformedSecret(t *testing.T) {
	e := newTestEngine()

	for _, secret := range []string{"not-base32!", "", "1890"} {
		_, err := e.GenerateCode(secret, time.Now())
		require.Error(t, err, secret)
		assert.True(t, errors.Is(err, domainerrors.ErrDecodeFailed))
	}
}

func TestGenerateCode_LowercaseAndPaddedSecret(t *testing.T) {
	e := newTestEngine()
	at := time.Unix(59, 0)

	got, err := e.GenerateCode(strings.ToLower(rfcSecret)+"====", at)
	require.NoError(t, err)
	assert.Equal(t, "287082", got)
}

func TestVerifyCode_ExactStepOnly(t *testing.T) {
	e := newTestEngine()
	now := time.Unix(1111111111, 0)

	ok, err := e.VerifyCode(rfcSecret, "050471", now)
	require.NoError(t, err)
	assert.True(t, ok)

	previous, err := e.GenerateCode(rfcSecret, now.Add(-30*time.Second))
	require.NoError(t, err)
	ok, err = e.VerifyCode(rfcSecret, previous, now)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.VerifyCode(rfcSecret, "50471", now)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyCode_MalformedSecret(t *testing.T) {
	e := newTestEngine()

	ok, err := e.VerifyCode("###", "123456", time.Now())
	require.Error(t, err)
	assert.False(t, ok)
}

func TestGenerateSecret(t *testing.T) {
	e := newTestEngine()

	first, err := e.GenerateSecret()
	require.NoError(t, err)
	second, err := e.GenerateSecret()
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.NotContains(t, first, "=")
	assert.NotEqual(t, first, second)

	key, err := decodeSecret(first)
	require.NoError(t, err)
	assert.Len(t, key, 20)

	now := time.Now()
	code, err := e.GenerateCode(first, now)
	require.NoError(t, err)
	ok, err := e.VerifyCode(first, code, now)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvisioningURI(t *testing.T) {
	e := newTestEngine()

	raw := e.ProvisioningURI(rfcSecret, "ada@example.com")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "otpauth", parsed.Scheme)
	assert.Equal(t, "totp", parsed.Host)
	assert.Equal(t, "/Transcendence:ada@example.com", parsed.Path)
	assert.Equal(t, rfcSecret, parsed.Query().Get("secret"))
	assert.Equal(t, "Transcendence", parsed.Query().Get("issuer"))
	assert.Equal(t, "6", parsed.Query().Get("digits"))
	assert.Equal(t, "30", parsed.Query().Get("period"))
}
