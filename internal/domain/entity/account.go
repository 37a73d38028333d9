package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultElo is the rating every new account starts with.
const DefaultElo = 1000

// Account is a player identity. Federated accounts are keyed by (AuthSource, ExternalID).
type Account struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Avatar      string
	Elo         int
	Status      int
	IsLogin     bool
	AuthSource  AuthSource
	ExternalID  *string // nil for INTERNAL accounts
	TOTPSeed    *string // base32, nil until enrolled
	TOTPEnabled bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AccountProfile is the public view of an account. It never carries the TOTP seed.
type AccountProfile struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Avatar      string     `json:"avatar"`
	Elo         int        `json:"elo"`
	Status      int        `json:"status"`
	IsLogin     bool       `json:"is_login"`
	AuthSource  AuthSource `json:"auth_source"`
	TOTPEnabled bool       `json:"totp_enable"`
}

// NewFederatedAccount builds an account for a first-time federated login.
// The second factor starts disabled and the account starts logged out.
func NewFederatedAccount(profile *ExternalProfile, name string) *Account {
	externalID := profile.ExternalID

	return &Account{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       name,
		Email:      profile.Email,
		Avatar:     profile.AvatarURL,
		Elo:        DefaultElo,
		AuthSource: profile.Source,
		ExternalID: &externalID,
	}
}

// Profile returns the public view of the account.
func (a *Account) Profile() *AccountProfile {
	return &AccountProfile{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Avatar:      a.Avatar,
		Elo:         a.Elo,
		Status:      a.Status,
		IsLogin:     a.IsLogin,
		AuthSource:  a.AuthSource,
		TOTPEnabled: a.TOTPEnabled,
	}
}

// HasSecondFactor reports whether login must present a TOTP code.
func (a *Account) HasSecondFactor() bool {
	return a.TOTPEnabled && a.TOTPSeed != nil && *a.TOTPSeed != ""
}

// AccountName returns the label shown in authenticator apps.
func (a *Account) AccountName() string {
	if a.Email != "" {
		return a.Email
	}

	return a.Name
}
