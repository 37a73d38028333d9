package service

import "time"

// OTPService generates and checks time-based one-time passwords.
type OTPService interface {
	// GenerateSecret returns a fresh base32 seed.
	GenerateSecret() (string, error)

	// GenerateCode returns the 6-digit code for secret at t.
	GenerateCode(secret string, t time.Time) (string, error)

	// VerifyCode reports whether candidate is the code for secret at now.
	VerifyCode(secret, candidate string, now time.Time) (bool, error)

	// ProvisioningURI builds the otpauth:// URI authenticator apps import.
	ProvisioningURI(secret, accountName string) string
}
