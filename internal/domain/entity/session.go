package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is what a verified session token asserts.
type SessionClaims struct {
	AccountID uuid.UUID
	Source    AuthSource
	IssuedAt  time.Time
	ExpiresAt time.Time
	// Pending marks a token issued before the second factor was presented.
	// It is only good for POST /login.
	Pending bool
}

// Session is a freshly issued session token and the account it belongs to.
type Session struct {
	Account   *AccountProfile `json:"account"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	// MFARequired is set when Token must be exchanged at /login with a TOTP code.
	MFARequired bool `json:"mfa_required"`
}

// TOTPEnrollment is returned once, when a seed is (re)generated.
type TOTPEnrollment struct {
	Seed       string `json:"seed"`
	OTPAuthURI string `json:"otpauth"`
	QRCode     string `json:"qrcode"` // data:image/png;base64 URL
}
