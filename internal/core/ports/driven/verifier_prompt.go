package driven

import "context"

// VerifierPrompt obtains the OAuth verification code from the resource
// owner. This is the only human-paced step of the flow: implementations may
// block indefinitely and must honor ctx cancellation.
//
// The console adapter is the default implementation; a TUI and scripted test
// doubles plug in through this interface.
type VerifierPrompt interface {
	// Verify presents the authorization URL to the user and returns the
	// verification code they supply.
	Verify(ctx context.Context, authorizationURL string) (string, error)
}
