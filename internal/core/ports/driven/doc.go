// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Signer: OAuth1 request signing and token exchange
//   - API: signed request pipeline against the provider
//   - VerifierPrompt: obtains the verification code from the resource owner
//   - KeyStore: consumer key file persistence
//
// # Optional Interfaces
//
//   - ProfileStore: persisted access-token profiles. Without it, profile
//     commands are disabled and tokens are only printed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
