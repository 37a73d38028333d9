// Package entity contains the core business objects of the project.
package entity

// AuthSource identifies where an account's identity was established.
type AuthSource string

const (
	// AuthSourceInternal marks accounts created without a federated provider.
	AuthSourceInternal AuthSource = "INTERNAL"
	// AuthSourceGoogle marks accounts federated through Google.
	AuthSourceGoogle AuthSource = "GOOGLE"
	// AuthSourceGitHub marks accounts federated through GitHub.
	AuthSourceGitHub AuthSource = "GITHUB"
	// AuthSourceFortyTwo marks accounts federated through the 42 intranet.
	AuthSourceFortyTwo AuthSource = "FORTY_TWO"
)

// route slugs used in /api/oauth2/:provider
const (
	routeGoogle   = "google-login"
	routeGitHub   = "github"
	routeFortyTwo = "forty_two"
)

// FederatedSources lists every source backed by an OAuth2 provider.
var FederatedSources = []AuthSource{AuthSourceGoogle, AuthSourceGitHub, AuthSourceFortyTwo}

// String returns the storage form of the source.
func (s AuthSource) String() string {
	return string(s)
}

// IsValid reports whether s is one of the closed set of sources.
func (s AuthSource) IsValid() bool {
	switch s {
	case AuthSourceInternal, AuthSourceGoogle, AuthSourceGitHub, AuthSourceFortyTwo:
		return true
	default:
		return false
	}
}

// IsFederated reports whether s is backed by an OAuth2 provider.
func (s AuthSource) IsFederated() bool {
	return s.IsValid() && s != AuthSourceInternal
}

// RouteName returns the URL slug for a federated source, or "" for INTERNAL.
func (s AuthSource) RouteName() string {
	switch s {
	case AuthSourceGoogle:
		return routeGoogle
	case AuthSourceGitHub:
		return routeGitHub
	case AuthSourceFortyTwo:
		return routeFortyTwo
	default:
		return ""
	}
}

// AuthSourceFromRoute maps a route slug back to its source.
func AuthSourceFromRoute(slug string) (AuthSource, bool) {
	switch slug {
	case routeGoogle:
		return AuthSourceGoogle, true
	case routeGitHub:
		return AuthSourceGitHub, true
	case routeFortyTwo:
		return AuthSourceFortyTwo, true
	default:
		return "", false
	}
}
