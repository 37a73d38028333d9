package oauth

import (
	"context"
	"net/http"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	"arena/internal/domain/service"
	"arena/internal/errors"

	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// NewGoogleProvider creates the Google provider. Its user info URL, when set,
// is the API base endpoint the userinfo service is resolved against.
func NewGoogleProvider(cfg *config.OAuthProviderConfig, httpClient *http.Client, timeout time.Duration) service.OAuthProvider {
	return newProvider(providerSpec{
		source:   entity.AuthSourceGoogle,
		endpoint: google.Endpoint,
		scopes:   []string{"profile", "email"},
		fetch:    fetchGoogleProfile,
	}, cfg, httpClient, timeout)
}

func fetchGoogleProfile(ctx context.Context, client *http.Client, endpoint string) (*entity.ExternalProfile, error) {
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	svc, err := googleoauth.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create google userinfo client")
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch google userinfo")
	}

	return &entity.ExternalProfile{
		ExternalID:  info.Id,
		Email:       info.Email,
		DisplayName: info.Name,
		AvatarURL:   info.Picture,
	}, nil
}
