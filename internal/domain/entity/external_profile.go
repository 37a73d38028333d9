package entity

// ExternalProfile is an identity asserted by a federated provider,
// normalized to the same shape for every provider.
type ExternalProfile struct {
	Source      AuthSource
	ExternalID  string // provider user id as a decimal or opaque string
	Email       string
	DisplayName string
	AvatarURL   string
}
