package driven

import (
	"context"
	"net/http"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

// Signer produces OAuth1 HMAC-SHA1 signed requests and performs the two
// token-exchange legs of the three-legged flow. Signature base-string
// construction is delegated entirely to the signing library behind the
// implementation; core never sees an Authorization header.
type Signer interface {
	// RequestToken obtains a temporary request token pair using
	// consumer-only signing (no resource-owner token).
	RequestToken(ctx context.Context) (domain.TokenPair, error)

	// AuthorizeURL returns the user authorization URL for a request token.
	// The token appears verbatim as the oauth_token query parameter.
	AuthorizeURL(token string) string

	// AccessToken exchanges an authorized request token and verifier for an
	// access token pair. The verifier participates in the oauth signing
	// parameters, never in the visible POST body.
	AccessToken(ctx context.Context, request domain.TokenPair, verifier string) (domain.TokenPair, error)

	// PostForm issues a signed form-encoded POST to uri. The params are sent
	// as the request body and participate in the signature base string.
	PostForm(ctx context.Context, uri string, params map[string]string, token domain.TokenPair) (*http.Response, error)

	// Client returns an HTTP client whose transport signs each request with
	// the given token pair. Used for multipart uploads, where only the oauth
	// parameters are signed.
	Client(token domain.TokenPair) (*http.Client, error)
}
