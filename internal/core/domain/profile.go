package domain

import "time"

// Profile is a named, persisted access-token pair. Profiles let a user keep
// tokens for several Plurk accounts and reuse them without re-running the
// authorization flow.
type Profile struct {
	// ID is a generated unique identifier.
	ID string
	// Name is the user-chosen profile name, unique across profiles.
	Name string
	// Token is the OAuth access token.
	Token string
	// Secret is the OAuth access token secret.
	Secret string
	// CreatedAt is when the profile was stored.
	CreatedAt time.Time
}

// Pair returns the profile's token pair.
func (p *Profile) Pair() TokenPair {
	return TokenPair{Token: p.Token, Secret: p.Secret}
}
