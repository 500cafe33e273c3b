package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
	"github.com/plurklab/plurk-cli/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages persisted access-token profiles.
type ProfileService struct {
	store driven.ProfileStore
}

// NewProfileService creates a new profile service.
func NewProfileService(store driven.ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// Save stores a token pair under a profile name. Saving to an existing name
// replaces that profile's tokens, keeping its ID.
func (s *ProfileService) Save(ctx context.Context, name string, pair domain.TokenPair) (domain.Profile, error) {
	if s.store == nil {
		return domain.Profile{}, domain.ErrNotImplemented
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Profile{}, fmt.Errorf("%w: profile name is required", domain.ErrInvalidInput)
	}
	if pair.Token == "" || pair.Secret == "" {
		return domain.Profile{}, fmt.Errorf("%w: profile requires both token and secret", domain.ErrInvalidInput)
	}

	profile := domain.Profile{
		ID:        uuid.New().String(),
		Name:      name,
		Token:     pair.Token,
		Secret:    pair.Secret,
		CreatedAt: time.Now(),
	}

	// Keep the existing ID when overwriting a profile of the same name.
	existing, err := s.store.GetByName(ctx, name)
	if err == nil && existing != nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Save(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("saving profile: %w", err)
	}
	return profile, nil
}

// GetByName retrieves a profile by name.
func (s *ProfileService) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.GetByName(ctx, name)
}

// List returns all stored profiles.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Delete removes a profile by ID.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
