package oauth

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	"arena/internal/domain/service"

	"golang.org/x/oauth2/github"
)

const githubUserURL = "https://api.github.com/user"

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"` // null unless the user made it public
	AvatarURL string `json:"avatar_url"`
}

// NewGitHubProvider creates the GitHub provider.
func NewGitHubProvider(cfg *config.OAuthProviderConfig, httpClient *http.Client, timeout time.Duration) service.OAuthProvider {
	return newProvider(providerSpec{
		source:      entity.AuthSourceGitHub,
		endpoint:    github.Endpoint,
		scopes:      []string{"read:user", "user:email"},
		userInfoURL: githubUserURL,
		fetch:       fetchGitHubProfile,
	}, cfg, httpClient, timeout)
}

func fetchGitHubProfile(ctx context.Context, client *http.Client, userInfoURL string) (*entity.ExternalProfile, error) {
	var user githubUser
	if err := getJSON(ctx, client, userInfoURL, &user); err != nil {
		return nil, err
	}

	profile := &entity.ExternalProfile{
		Email:       user.Email,
		DisplayName: user.Login,
		AvatarURL:   user.AvatarURL,
	}
	if user.ID != 0 {
		profile.ExternalID = strconv.FormatInt(user.ID, 10)
	}

	return profile, nil
}
