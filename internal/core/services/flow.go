package services

import (
	"context"
	"fmt"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
	"github.com/plurklab/plurk-cli/internal/core/ports/driving"
	"github.com/plurklab/plurk-cli/internal/logger"
)

// Ensure FlowService implements the interface.
var _ driving.OAuthFlow = (*FlowService)(nil)

// FlowService orchestrates the three-legged OAuth1 flow against Plurk and
// exposes steady-state signed API calls once authorized.
//
// The service owns one Credentials value and is the only component that
// mutates its token pair. Token state is written only after a leg completes
// successfully, so a failed or cancelled step always leaves the flow in its
// prior state and can simply be retried.
type FlowService struct {
	creds  *domain.Credentials
	signer driven.Signer
	api    driven.API
	prompt driven.VerifierPrompt
}

// NewFlowService creates a flow controller over the given credentials.
func NewFlowService(
	creds *domain.Credentials,
	signer driven.Signer,
	api driven.API,
	prompt driven.VerifierPrompt,
) *FlowService {
	return &FlowService{
		creds:  creds,
		signer: signer,
		api:    api,
		prompt: prompt,
	}
}

// RequestToken obtains a temporary request token pair and stores it,
// replacing any pair held before. The request is signed with consumer keys
// only.
func (s *FlowService) RequestToken(ctx context.Context) (domain.TokenPair, error) {
	logger.Section("Request Token")

	pair, err := s.signer.RequestToken(ctx)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("obtaining request token: %w", err)
	}

	s.creds.SetToken(pair)
	logger.Debug("Request token obtained: %s", pair.Token)
	return pair, nil
}

// VerifierURL returns the authorization URL for the stored request token.
func (s *FlowService) VerifierURL() (string, error) {
	pair, ok := s.creds.Token()
	if !ok {
		return "", fmt.Errorf("%w: obtain a request token before the verifier URL", domain.ErrAuthorization)
	}
	return s.signer.AuthorizeURL(pair.Token), nil
}

// Verifier asks the resource owner for the verification code, presenting
// the authorization URL through the configured prompt. This is the only
// human-paced step; it blocks until the user answers or ctx is cancelled.
func (s *FlowService) Verifier(ctx context.Context) (string, error) {
	url, err := s.VerifierURL()
	if err != nil {
		return "", err
	}

	logger.Debug("Awaiting verifier for %s", url)
	verifier, err := s.prompt.Verify(ctx, url)
	if err != nil {
		return "", fmt.Errorf("obtaining verifier: %w", err)
	}
	return verifier, nil
}

// AccessToken exchanges the stored request token and the verifier for an
// access token pair. On success the stored pair is overwritten; the upgrade
// is one-way. On failure the request-token state is left untouched so the
// exchange can be retried with a fresh verifier.
func (s *FlowService) AccessToken(ctx context.Context, verifier string) (domain.TokenPair, error) {
	if verifier == "" {
		return domain.TokenPair{}, fmt.Errorf("%w: empty verifier", domain.ErrInvalidInput)
	}

	request, ok := s.creds.Token()
	if !ok {
		return domain.TokenPair{}, fmt.Errorf("%w: obtain a request token before the access token", domain.ErrAuthorization)
	}

	logger.Section("Access Token")
	pair, err := s.signer.AccessToken(ctx, request, verifier)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("exchanging access token: %w", err)
	}

	s.creds.SetToken(pair)
	logger.Debug("Access token obtained: %s", pair.Token)
	return pair, nil
}

// Authorize drives the flow to the authorized state. With a pre-existing
// pair it sets the credentials directly, without any network calls;
// otherwise it runs the three legs in order.
func (s *FlowService) Authorize(ctx context.Context, existing *domain.TokenPair) error {
	if existing != nil {
		s.creds.SetToken(*existing)
		logger.Debug("Authorized with pre-existing token %s", existing.Token)
		return nil
	}

	if _, err := s.RequestToken(ctx); err != nil {
		return err
	}

	verifier, err := s.Verifier(ctx)
	if err != nil {
		return err
	}

	if _, err := s.AccessToken(ctx, verifier); err != nil {
		return err
	}
	return nil
}

// Call issues a signed API request through the pipeline using the stored
// token pair.
func (s *FlowService) Call(
	ctx context.Context,
	endpoint string,
	data map[string]string,
	files map[string]string,
) (domain.Response, error) {
	pair, ok := s.creds.Token()
	if !ok {
		return nil, fmt.Errorf("%w: authorize before calling the API", domain.ErrAuthorization)
	}
	return s.api.Call(ctx, endpoint, data, files, pair)
}

// AccessPair returns the token pair currently held by the credentials.
func (s *FlowService) AccessPair() (domain.TokenPair, bool) {
	return s.creds.Token()
}
