package domain

// TokenPair is an OAuth1 token together with its matching secret.
// During the three-legged flow the pair first holds the temporary request
// token and is later overwritten with the long-lived access token.
type TokenPair struct {
	Token  string
	Secret string
}

// Credentials holds the consumer key pair and the current token state for a
// single OAuth flow. The consumer key and secret are fixed for the lifetime
// of the client; the token pair mutates as the flow progresses, always both
// fields together.
//
// One flow controller owns one Credentials value. The value is not safe for
// concurrent mutation and does not need to be: the flow is strictly
// sequential per credential set.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string

	token *TokenPair
}

// NewCredentials creates credentials with no token pair set.
func NewCredentials(consumerKey, consumerSecret string) *Credentials {
	return &Credentials{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	}
}

// SetToken stores a token pair, replacing any previous pair.
func (c *Credentials) SetToken(pair TokenPair) {
	p := pair
	c.token = &p
}

// ClearToken removes the current token pair.
func (c *Credentials) ClearToken() {
	c.token = nil
}

// Token returns the current token pair and whether one is set.
func (c *Credentials) Token() (TokenPair, bool) {
	if c.token == nil {
		return TokenPair{}, false
	}
	return *c.token, true
}

// HasToken reports whether a token pair is currently set.
func (c *Credentials) HasToken() bool {
	return c.token != nil
}
