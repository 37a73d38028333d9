package impl

import (
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/errors"
)

// issueSession signs a fresh session token for the profile.
func issueSession(tokens service.SessionTokenService, profile *entity.AccountProfile) (*entity.Session, error) {
	token, expiresAt, err := tokens.Issue(profile.ID, profile.AuthSource)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &entity.Session{
		Account:   profile,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// issueCallbackSession signs the token handed out by the federation callback.
// Accounts with a second factor only get a pending token for /login.
func issueCallbackSession(tokens service.SessionTokenService, profile *entity.AccountProfile) (*entity.Session, error) {
	if !profile.TOTPEnabled {
		return issueSession(tokens, profile)
	}

	token, expiresAt, err := tokens.IssuePending(profile.ID, profile.AuthSource)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue pending session token")
	}

	return &entity.Session{
		Account:     profile,
		Token:       token,
		ExpiresAt:   expiresAt,
		MFARequired: true,
	}, nil
}

// toDomainError maps repository sentinels onto their domain errors.
func toDomainError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.WithStack(domainerrors.ErrAccountNotFound)
	case errors.Is(err, repository.ErrAccountNameTaken):
		return errors.WithStack(domainerrors.ErrAccountAlreadyExists)
	default:
		return err
	}
}
