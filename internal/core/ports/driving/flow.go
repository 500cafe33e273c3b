package driving

import (
	"context"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

// OAuthFlow drives the three-legged OAuth1 flow and steady-state API calls.
//
// The flow moves through three states, tracked by the token pair held in
// the credentials: no token, request token obtained, access token obtained.
// The legs are strictly sequential; each step's output is the next step's
// input.
type OAuthFlow interface {
	// RequestToken obtains a temporary request token, replacing any pair
	// held in the credentials. The stored pair is untouched on failure.
	RequestToken(ctx context.Context) (domain.TokenPair, error)

	// VerifierURL returns the user authorization URL for the current
	// request token. Fails with domain.ErrAuthorization when no request
	// token has been obtained.
	VerifierURL() (string, error)

	// Verifier obtains the verification code from the resource owner via
	// the configured prompt. Blocks until the user responds or ctx is
	// cancelled.
	Verifier(ctx context.Context) (string, error)

	// AccessToken exchanges the stored request token plus verifier for an
	// access token, overwriting the stored pair on success. This upgrade is
	// one-way; on failure the request-token state is preserved so the step
	// can be retried.
	AccessToken(ctx context.Context, verifier string) (domain.TokenPair, error)

	// Authorize is the convenience entry point. With a pre-existing pair it
	// jumps straight to the authorized state without network calls;
	// otherwise it runs request token, verifier, and access token in order.
	Authorize(ctx context.Context, existing *domain.TokenPair) error

	// Call issues a signed API request using the stored access token.
	// Fails with domain.ErrAuthorization when the flow is not authorized.
	Call(ctx context.Context, endpoint string, data map[string]string, files map[string]string) (domain.Response, error)

	// AccessPair returns the currently stored token pair, if any.
	AccessPair() (domain.TokenPair, bool)
}
