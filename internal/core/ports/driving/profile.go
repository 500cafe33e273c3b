package driving

import (
	"context"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

// ProfileService manages persisted access-token profiles.
type ProfileService interface {
	// Save stores a token pair under a profile name.
	Save(ctx context.Context, name string, pair domain.TokenPair) (domain.Profile, error)

	// GetByName retrieves a profile by name.
	GetByName(ctx context.Context, name string) (*domain.Profile, error)

	// List returns all stored profiles.
	List(ctx context.Context) ([]domain.Profile, error)

	// Delete removes a profile by ID.
	Delete(ctx context.Context, id string) error
}
