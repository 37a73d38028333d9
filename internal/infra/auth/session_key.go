// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"arena/config"
	"arena/internal/errors"
	"arena/internal/infra/base64url"

	"golang.org/x/crypto/hkdf"
)

const sessionKeySize = 32

// SessionKey is the process-wide secret every session token derives from.
// It is created once at startup and never rotated.
type SessionKey struct {
	secret []byte
}

// NewSessionKey loads the key from configuration or, when none is set,
// generates a random one. A generated key invalidates tokens across restarts.
func NewSessionKey(cfg *config.Config) (*SessionKey, error) {
	if cfg.Session.Key != "" {
		secret, err := base64url.Decode(cfg.Session.Key)
		if err != nil {
			return nil, errors.Wrap(err, "session key is not base64url")
		}
		if len(secret) < sessionKeySize {
			return nil, errors.Errorf("session key must be at least %d bytes, got %d", sessionKeySize, len(secret))
		}

		return &SessionKey{secret: secret}, nil
	}

	secret := make([]byte, sessionKeySize)
	if _, err := rand.Read(secret); err != nil {
		return nil, errors.Wrap(err, "failed to generate session key")
	}

	return &SessionKey{secret: secret}, nil
}

// Derive returns a 32 byte subkey bound to purpose.
func (k *SessionKey) Derive(purpose string) ([]byte, error) {
	sub := make([]byte, sessionKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, k.secret, nil, []byte(purpose)), sub); err != nil {
		return nil, errors.Wrap(err, "failed to derive session subkey")
	}

	return sub, nil
}
