package driven

import "github.com/plurklab/plurk-cli/internal/core/domain"

// KeyStore persists the user's consumer key pair and, optionally, a
// previously obtained access token pair.
type KeyStore interface {
	// Load reads the stored keys. Returns domain.ErrNoConsumerKeys when the
	// key file does not exist yet.
	Load() (domain.Keys, error)

	// Save writes the keys, creating the file with owner-only permissions.
	Save(keys domain.Keys) error

	// Path returns the backing file path, for user-facing messages.
	Path() string
}
