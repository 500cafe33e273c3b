package domain

import "errors"

// Domain errors represent OAuth flow and API failures.
// Every failure surfaced by the flow controller or the request pipeline
// wraps exactly one of these sentinels, so callers can classify errors
// with errors.Is without depending on adapter internals.
var (
	// ErrNetwork indicates a transport failure: connection error, timeout,
	// or a non-2xx HTTP status from the provider.
	ErrNetwork = errors.New("network error")

	// ErrAuthorization indicates a signing or verification failure, or a
	// protocol precondition violated by the caller (for example requesting
	// the verifier URL before a request token exists).
	ErrAuthorization = errors.New("authorization error")

	// ErrProtocol indicates an unexpected response shape: an unsupported
	// content type or a parsed response missing expected fields.
	ErrProtocol = errors.New("protocol error")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoConsumerKeys indicates no consumer key pair is configured.
	// The user needs to run the keys setup before anything else.
	ErrNoConsumerKeys = errors.New("consumer keys not configured")
)
