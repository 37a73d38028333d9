package oauth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCode        = "good-code"
	testAccessToken = "access-123"
)

// newProviderServer fakes a provider: a token endpoint and a profile endpoint at profilePath.
func newProviderServer(t *testing.T, profilePath, profileJSON string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != testCode {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"`+testAccessToken+`","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc(profilePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, profileJSON)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func testProviderConfig(srv *httptest.Server, userInfoURL string) *config.OAuthProviderConfig {
	return &config.OAuthProviderConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8080/api/oauth2/test/callback",
		AuthURL:      srv.URL + "/authorize",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  userInfoURL,
	}
}

func TestProvider_AuthorizationURL(t *testing.T) {
	srv := newProviderServer(t, "/v2/me", `{}`)
	p := NewFortyTwoProvider(testProviderConfig(srv, srv.URL+"/v2/me"), srv.Client(), time.Second)

	raw := p.AuthorizationURL("state-xyz")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/authorize", parsed.Path)
	q := parsed.Query()
	assert.Equal(t, "state-xyz", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "public", q.Get("scope"))
	assert.Equal(t, "http://localhost:8080/api/oauth2/test/callback", q.Get("redirect_uri"))
}

func TestGitHubProvider_ExchangeAndFetch(t *testing.T) {
	srv := newProviderServer(t, "/user",
		`{"id":583231,"login":"octocat","email":null,"avatar_url":"https://avatars.example/u/583231"}`)
	p := NewGitHubProvider(testProviderConfig(srv, srv.URL+"/user"), srv.Client(), time.Second)

	token, err := p.ExchangeCode(context.Background(), testCode)
	require.NoError(t, err)
	assert.Equal(t, testAccessToken, token)

	profile, err := p.FetchProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, &entity.ExternalProfile{
		Source:      entity.AuthSourceGitHub,
		ExternalID:  "583231",
		Email:       "",
		DisplayName: "octocat",
		AvatarURL:   "https://avatars.example/u/583231",
	}, profile)
}

func TestFortyTwoProvider_ExchangeAndFetch(t *testing.T) {
	srv := newProviderServer(t, "/v2/me",
		`{"id":4242,"login":"norminet","email":"norminet@student.42.fr","image":{"link":"https://cdn.intra.42.fr/norminet.jpg","versions":{}}}`)
	p := NewFortyTwoProvider(testProviderConfig(srv, srv.URL+"/v2/me"), srv.Client(), time.Second)

	token, err := p.ExchangeCode(context.Background(), testCode)
	require.NoError(t, err)

	profile, err := p.FetchProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthSourceFortyTwo, profile.Source)
	assert.Equal(t, "4242", profile.ExternalID)
	assert.Equal(t, "norminet@student.42.fr", profile.Email)
	assert.Equal(t, "norminet", profile.DisplayName)
	assert.Equal(t, "https://cdn.intra.42.fr/norminet.jpg", profile.AvatarURL)
}

func TestGoogleProvider_ExchangeAndFetch(t *testing.T) {
	srv := newProviderServer(t, "/oauth2/v2/userinfo",
		`{"id":"109876543210","email":"ada@example.com","name":"Ada Lovelace","picture":"https://lh3.example/ada.png"}`)
	p := NewGoogleProvider(testProviderConfig(srv, srv.URL+"/"), srv.Client(), time.Second)

	token, err := p.ExchangeCode(context.Background(), testCode)
	require.NoError(t, err)

	profile, err := p.FetchProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthSourceGoogle, profile.Source)
	assert.Equal(t, "109876543210", profile.ExternalID)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Ada Lovelace", profile.DisplayName)
	assert.Equal(t, "https://lh3.example/ada.png", profile.AvatarURL)
}

func TestProvider_ExchangeRejectedCode(t *testing.T) {
	srv := newProviderServer(t, "/user", `{}`)
	p := NewGitHubProvider(testProviderConfig(srv, srv.URL+"/user"), srv.Client(), time.Second)

	_, err := p.ExchangeCode(context.Background(), "stolen-code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderFailed))
	assert.Equal(t, entity.ResultProviderError, domainerrors.KindOf(err))
}

func TestProvider_ExchangeMissingCode(t *testing.T) {
	srv := newProviderServer(t, "/user", `{}`)
	p := NewGitHubProvider(testProviderConfig(srv, srv.URL+"/user"), srv.Client(), time.Second)

	_, err := p.ExchangeCode(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderFailed))
}

func TestProvider_FetchProfileFailures(t *testing.T) {
	tests := []struct {
		name        string
		profileJSON string
		token       string
	}{
		{"revoked token", `{"id":1,"login":"x"}`, "revoked"},
		{"missing id", `{"login":"ghost"}`, testAccessToken},
		{"malformed body", `{"id":`, testAccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newProviderServer(t, "/user", tt.profileJSON)
			p := NewGitHubProvider(testProviderConfig(srv, srv.URL+"/user"), srv.Client(), time.Second)

			_, err := p.FetchProfile(context.Background(), tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrProviderFailed))
		})
	}
}

func TestProvider_ExchangeTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	p := NewGitHubProvider(testProviderConfig(srv, srv.URL+"/user"), srv.Client(), 50*time.Millisecond)

	start := time.Now()
	_, err := p.ExchangeCode(context.Background(), testCode)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderFailed))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRegistry_OnlyConfiguredProviders(t *testing.T) {
	cfg := &config.Config{}
	cfg.OAuth.HTTPTimeout = time.Second
	cfg.OAuth.Providers.GitHub = &config.OAuthProviderConfig{ClientID: "id", ClientSecret: "secret"}
	cfg.OAuth.Providers.FortyTwo = &config.OAuthProviderConfig{ClientID: "id"}

	reg := NewRegistry(Params{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	gh, err := reg.Provider(entity.AuthSourceGitHub)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthSourceGitHub, gh.Source())

	for _, source := range []entity.AuthSource{entity.AuthSourceFortyTwo, entity.AuthSourceGoogle, entity.AuthSourceInternal} {
		_, err := reg.Provider(source)
		require.Error(t, err, source)
		assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedProvider))
	}
}
