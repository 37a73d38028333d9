package auth

import (
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"
	"arena/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionTokenPurpose = "arena session token v1"
	mfaPending          = "pending"
	// pendingTokenTTL bounds how long a login may wait for its TOTP code.
	pendingTokenTTL = 5 * time.Minute
)

// sessionClaims is the JWT body: sub is the account id, src the auth source.
type sessionClaims struct {
	Source string `json:"src"`
	MFA    string `json:"mfa,omitempty"`
	jwt.RegisteredClaims
}

// jwtService signs HS256 session tokens with a key derived from the SessionKey.
type jwtService struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, key *SessionKey) (service.SessionTokenService, error) {
	return newJWTService(cfg, key, time.Now)
}

func newJWTService(cfg *config.Config, key *SessionKey, now func() time.Time) (*jwtService, error) {
	signingKey, err := key.Derive(sessionTokenPurpose)
	if err != nil {
		return nil, err
	}

	return &jwtService{
		signingKey: signingKey,
		issuer:     cfg.Session.Issuer,
		ttl:        cfg.Session.TokenTTL,
		now:        now,
	}, nil
}

// Issue creates a session token for the account.
func (s *jwtService) Issue(accountID uuid.UUID, source entity.AuthSource) (string, time.Time, error) {
	return s.sign(accountID, source, "", s.ttl)
}

// IssuePending creates a token that only Login accepts.
func (s *jwtService) IssuePending(accountID uuid.UUID, source entity.AuthSource) (string, time.Time, error) {
	return s.sign(accountID, source, mfaPending, min(s.ttl, pendingTokenTTL))
}

func (s *jwtService) sign(accountID uuid.UUID, source entity.AuthSource, mfa string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)

	claims := sessionClaims{
		Source: source.String(),
		MFA:    mfa,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign session token")
	}

	return token, expiresAt, nil
}

// Verify validates signature, algorithm, issuer and expiry.
func (s *jwtService) Verify(tokenString string) (*entity.SessionClaims, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage(err.Error())
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("subject is not an account id")
	}
	source := entity.AuthSource(claims.Source)
	if !source.IsValid() {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("unknown auth source")
	}

	if claims.MFA != "" && claims.MFA != mfaPending {
		return nil, domainerrors.ErrSessionTokenInvalid.WrapMessage("unknown mfa state")
	}

	verified := &entity.SessionClaims{
		AccountID: accountID,
		Source:    source,
		Pending:   claims.MFA == mfaPending,
	}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		verified.ExpiresAt = claims.ExpiresAt.Time
	}

	return verified, nil
}
