package driven

import (
	"context"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

// ProfileStore persists named access-token profiles so users can keep
// tokens for several accounts and reuse them without re-authorizing.
type ProfileStore interface {
	// Save stores a profile. Creates if new, updates if the ID exists.
	Save(ctx context.Context, profile domain.Profile) error

	// Get retrieves a profile by ID.
	Get(ctx context.Context, id string) (*domain.Profile, error)

	// GetByName retrieves a profile by its unique name.
	GetByName(ctx context.Context, name string) (*domain.Profile, error)

	// List returns all profiles ordered by creation time.
	List(ctx context.Context) ([]domain.Profile, error)

	// Delete removes a profile by ID.
	Delete(ctx context.Context, id string) error
}
