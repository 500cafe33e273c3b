// Package signing adapts the mrjones/oauth library to the Signer port.
// All OAuth1 HMAC-SHA1 base-string construction, parameter normalization,
// and signature computation happen inside the library; this package only
// maps between domain types and the library's API.
package signing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mrjones/oauth"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
	"github.com/plurklab/plurk-cli/internal/logger"
)

// Plurk's three OAuth endpoints, relative to the API base URL.
const (
	requestTokenPath = "OAuth/request_token"
	authorizePath    = "OAuth/authorize"
	accessTokenPath  = "OAuth/access_token"
)

// outOfBand asks the provider for a PIN-style verifier instead of
// redirecting to a callback URL.
const outOfBand = "oob"

// DefaultBaseURL is the production Plurk API base.
const DefaultBaseURL = "https://www.plurk.com/"

// DefaultTimeout bounds each HTTP call unless configured otherwise.
const DefaultTimeout = 60 * time.Second

// Ensure Signer implements the interface.
var _ driven.Signer = (*Signer)(nil)

// Config holds optional Signer settings.
type Config struct {
	// BaseURL overrides the provider base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds each HTTP call. Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient overrides the HTTP layer beneath the signing library.
	// Tests substitute a recorder here. Defaults to an *http.Client with
	// the configured timeout.
	HTTPClient oauth.HttpClient
}

// Signer signs requests with a consumer key pair and performs the two
// token-exchange legs of the flow.
type Signer struct {
	consumerKey    string
	consumerSecret string
	provider       oauth.ServiceProvider
	authorizeURL   string
	httpClient     oauth.HttpClient
	timeout        time.Duration
}

// New creates a Signer for the given consumer key pair.
func New(consumerKey, consumerSecret string, cfg Config) (*Signer, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, domain.ErrNoConsumerKeys
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", domain.ErrInvalidInput, base, err)
	}

	requestURL, err := url.JoinPath(base, requestTokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	authorizeURL, err := url.JoinPath(base, authorizePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	accessURL, err := url.JoinPath(base, accessTokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Signer{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		provider: oauth.ServiceProvider{
			RequestTokenUrl:   requestURL,
			AuthorizeTokenUrl: authorizeURL,
			AccessTokenUrl:    accessURL,
		},
		authorizeURL: authorizeURL,
		httpClient:   httpClient,
		timeout:      timeout,
	}, nil
}

// RequestToken obtains a temporary request token pair using consumer-only
// signing.
func (s *Signer) RequestToken(ctx context.Context) (domain.TokenPair, error) {
	consumer := s.newConsumer(ctx)

	token, loginURL, err := consumer.GetRequestTokenAndUrl(outOfBand)
	if err != nil {
		return domain.TokenPair{}, wrapNetwork("request token", err)
	}

	logger.Debug("Request token leg complete, login URL %s", loginURL)
	return domain.TokenPair{Token: token.Token, Secret: token.Secret}, nil
}

// AuthorizeURL returns the user authorization URL for a request token. The
// token is the only query parameter.
func (s *Signer) AuthorizeURL(token string) string {
	return s.authorizeURL + "?oauth_token=" + url.QueryEscape(token)
}

// AccessToken exchanges an authorized request token plus verifier for an
// access token pair. The library injects the verifier into the oauth
// signing parameters, not into the request body.
func (s *Signer) AccessToken(ctx context.Context, request domain.TokenPair, verifier string) (domain.TokenPair, error) {
	consumer := s.newConsumer(ctx)

	requestToken := &oauth.RequestToken{Token: request.Token, Secret: request.Secret}
	accessToken, err := consumer.AuthorizeToken(requestToken, verifier)
	if err != nil {
		return domain.TokenPair{}, wrapNetwork("access token", err)
	}

	return domain.TokenPair{Token: accessToken.Token, Secret: accessToken.Secret}, nil
}

// PostForm issues a signed form-encoded POST. The params travel in the body
// and participate in the signature base string.
func (s *Signer) PostForm(ctx context.Context, uri string, params map[string]string, token domain.TokenPair) (*http.Response, error) {
	consumer := s.newConsumer(ctx)

	accessToken := &oauth.AccessToken{Token: token.Token, Secret: token.Secret}
	resp, err := consumer.Post(uri, params, accessToken)
	if err != nil {
		return nil, wrapNetwork("signed POST "+uri, err)
	}
	return resp, nil
}

// Client returns an HTTP client whose transport signs each request with the
// given token pair. Multipart bodies are not form-encoded, so only the
// oauth parameters are signed, per RFC 5849.
func (s *Signer) Client(token domain.TokenPair) (*http.Client, error) {
	consumer := oauth.NewConsumer(s.consumerKey, s.consumerSecret, s.provider)

	client, err := consumer.MakeHttpClient(&oauth.AccessToken{Token: token.Token, Secret: token.Secret})
	if err != nil {
		return nil, fmt.Errorf("building signing client: %w", err)
	}
	client.Timeout = s.timeout
	return client, nil
}

// newConsumer builds a library consumer whose HTTP layer carries ctx, so
// cancellation and deadlines propagate into every signed call.
func (s *Signer) newConsumer(ctx context.Context) *oauth.Consumer {
	consumer := oauth.NewConsumer(s.consumerKey, s.consumerSecret, s.provider)
	consumer.HttpClient = &contextClient{ctx: ctx, inner: s.httpClient}
	return consumer
}

// contextClient attaches a context to requests made by the signing library,
// which predates context plumbing.
type contextClient struct {
	ctx   context.Context
	inner oauth.HttpClient
}

func (c *contextClient) Do(req *http.Request) (*http.Response, error) {
	return c.inner.Do(req.WithContext(c.ctx))
}

// wrapNetwork classifies a signing-library failure as a network error.
// Transport failures, timeouts, and non-2xx statuses all surface from the
// library as errors on the call.
func wrapNetwork(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrNetwork, err))
}
