package oauth

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	"arena/internal/domain/service"

	"golang.org/x/oauth2"
)

const fortyTwoMeURL = "https://api.intra.42.fr/v2/me"

var fortyTwoEndpoint = oauth2.Endpoint{
	AuthURL:   "https://api.intra.42.fr/oauth/authorize",
	TokenURL:  "https://api.intra.42.fr/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

type fortyTwoUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Image struct {
		Link string `json:"link"`
	} `json:"image"`
}

// NewFortyTwoProvider creates the 42 intranet provider.
func NewFortyTwoProvider(cfg *config.OAuthProviderConfig, httpClient *http.Client, timeout time.Duration) service.OAuthProvider {
	return newProvider(providerSpec{
		source:      entity.AuthSourceFortyTwo,
		endpoint:    fortyTwoEndpoint,
		scopes:      []string{"public"},
		userInfoURL: fortyTwoMeURL,
		fetch:       fetchFortyTwoProfile,
	}, cfg, httpClient, timeout)
}

func fetchFortyTwoProfile(ctx context.Context, client *http.Client, userInfoURL string) (*entity.ExternalProfile, error) {
	var user fortyTwoUser
	if err := getJSON(ctx, client, userInfoURL, &user); err != nil {
		return nil, err
	}

	profile := &entity.ExternalProfile{
		Email:       user.Email,
		DisplayName: user.Login,
		AvatarURL:   user.Image.Link,
	}
	if user.ID != 0 {
		profile.ExternalID = strconv.FormatInt(user.ID, 10)
	}

	return profile, nil
}
