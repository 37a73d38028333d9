// Package totp implements RFC 6238 one-time passwords with HMAC-SHA1,
// a 30 second step and 6 digits.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // RFC 6238 default algorithm expected by authenticator apps
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"strings"
	"time"

	"arena/config"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"
	"arena/internal/errors"
)

const (
	secretBytes = 20
	stepSeconds = 30
	digits      = 6
	modulus     = 1_000_000
)

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type engine struct {
	issuer string
}

// NewEngine creates the TOTP engine. The issuer labels provisioning URIs.
func NewEngine(cfg *config.Config) service.OTPService {
	return &engine{issuer: cfg.TOTP.Issuer}
}

// GenerateSecret returns 20 random bytes in unpadded base32 (32 characters).
func (e *engine) GenerateSecret() (string, error) {
	raw := make([]byte, secretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to read random secret")
	}

	return secretEncoding.EncodeToString(raw), nil
}

// GenerateCode returns the code for the 30 second step containing t.
func (e *engine) GenerateCode(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	return hotp(key, uint64(t.Unix()/stepSeconds)), nil
}

// VerifyCode accepts only the code of the current step. There is no skew window.
func (e *engine) VerifyCode(secret, candidate string, now time.Time) (bool, error) {
	expected, err := e.GenerateCode(secret, now)
	if err != nil {
		return false, err
	}
	if len(candidate) != digits {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1, nil
}

// ProvisioningURI builds otpauth://totp/<issuer>:<account>?secret=...
func (e *engine) ProvisioningURI(secret, accountName string) string {
	values := url.Values{}
	values.Set("secret", secret)
	values.Set("issuer", e.issuer)
	values.Set("algorithm", "SHA1")
	values.Set("digits", fmt.Sprint(digits))
	values.Set("period", fmt.Sprint(stepSeconds))

	label := url.PathEscape(e.issuer + ":" + accountName)

	return "otpauth://totp/" + label + "?" + values.Encode()
}

func decodeSecret(secret string) ([]byte, error) {
	normalized := strings.ToUpper(strings.TrimRight(strings.TrimSpace(secret), "="))
	key, err := secretEncoding.DecodeString(normalized)
	if err != nil {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("totp secret is not base32")
	}
	if len(key) == 0 {
		return nil, domainerrors.ErrDecodeFailed.WithDetails("totp secret is empty")
	}

	return key, nil
}

// hotp computes RFC 4226 dynamic truncation of HMAC-SHA1(key, counter).
func hotp(key []byte, counter uint64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%0*d", digits, bin%modulus)
}
