package domain

// Keys is the content of the user's key file: the consumer key pair issued
// by Plurk, and optionally a previously obtained access token pair so the
// authorization flow can be skipped entirely.
type Keys struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// HasConsumer reports whether both consumer fields are present.
func (k Keys) HasConsumer() bool {
	return k.ConsumerKey != "" && k.ConsumerSecret != ""
}

// AccessPair returns the stored access token pair and whether both fields
// are present.
func (k Keys) AccessPair() (TokenPair, bool) {
	if k.AccessToken == "" || k.AccessTokenSecret == "" {
		return TokenPair{}, false
	}
	return TokenPair{Token: k.AccessToken, Secret: k.AccessTokenSecret}, true
}
