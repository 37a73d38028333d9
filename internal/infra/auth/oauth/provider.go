// Package oauth implements the federated identity providers on golang.org/x/oauth2.
// Every provider shares the same authorization-code flow and differs only in its
// endpoints and in how its profile payload is normalized.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"
	"arena/internal/errors"

	"golang.org/x/oauth2"
)

const maxProfileBytes = 1 << 20

// profileFetcher loads and normalizes a provider profile with an authorized client.
type profileFetcher func(ctx context.Context, client *http.Client, userInfoURL string) (*entity.ExternalProfile, error)

type providerSpec struct {
	source      entity.AuthSource
	endpoint    oauth2.Endpoint
	scopes      []string
	userInfoURL string
	fetch       profileFetcher
}

type provider struct {
	source      entity.AuthSource
	config      *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	timeout     time.Duration
	fetch       profileFetcher
}

func newProvider(spec providerSpec, cfg *config.OAuthProviderConfig, httpClient *http.Client, timeout time.Duration) service.OAuthProvider {
	endpoint := spec.endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	scopes := spec.scopes
	if len(cfg.Scopes) > 0 {
		scopes = cfg.Scopes
	}
	userInfoURL := spec.userInfoURL
	if cfg.UserInfoURL != "" {
		userInfoURL = cfg.UserInfoURL
	}

	return &provider{
		source: spec.source,
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		httpClient:  httpClient,
		timeout:     timeout,
		fetch:       spec.fetch,
	}
}

func (p *provider) Source() entity.AuthSource {
	return p.source
}

func (p *provider) AuthorizationURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *provider) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", p.failure("token exchange", errors.New("missing authorization code"))
	}

	ctx, cancel := p.bound(ctx)
	defer cancel()

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", p.failure("token exchange", err)
	}
	if token.AccessToken == "" {
		return "", p.failure("token exchange", errors.New("empty access token"))
	}

	return token.AccessToken, nil
}

func (p *provider) FetchProfile(ctx context.Context, accessToken string) (*entity.ExternalProfile, error) {
	ctx, cancel := p.bound(ctx)
	defer cancel()

	client := p.config.Client(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	profile, err := p.fetch(ctx, client, p.userInfoURL)
	if err != nil {
		return nil, p.failure("profile fetch", err)
	}
	if profile.ExternalID == "" {
		return nil, p.failure("profile fetch", errors.New("profile has no id"))
	}
	profile.Source = p.source

	return profile, nil
}

// bound routes oauth2 traffic through the shared client and caps the round trip.
func (p *provider) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	return context.WithTimeout(ctx, p.timeout)
}

func (p *provider) failure(stage string, err error) error {
	return errors.Wrapf(domainerrors.ErrProviderFailed.WithDetails(err.Error()), "%s %s", p.source, stage)
}

// getJSON issues an authorized GET and decodes a JSON body into out.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build profile request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "profile request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("profile endpoint returned %d", resp.StatusCode)
	}

	return errors.Wrap(json.NewDecoder(io.LimitReader(resp.Body, maxProfileBytes)).Decode(out), "failed to decode profile")
}
