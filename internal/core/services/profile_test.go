package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plurklab/plurk-cli/internal/adapters/driven/storage/memory"
	"github.com/plurklab/plurk-cli/internal/core/domain"
)

func TestProfileService_Save(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore())

	profile, err := service.Save(context.Background(), "alice", domain.TokenPair{Token: "T", Secret: "S"})

	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "alice", profile.Name)
	assert.False(t, profile.CreatedAt.IsZero())

	got, err := service.GetByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "T", got.Token)
	assert.Equal(t, "S", got.Secret)
}

func TestProfileService_Save_EmptyName(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore())

	_, err := service.Save(context.Background(), "  ", domain.TokenPair{Token: "T", Secret: "S"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfileService_Save_HalfSetPair(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore())

	_, err := service.Save(context.Background(), "alice", domain.TokenPair{Token: "T"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfileService_Save_SameNameKeepsID(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore())
	ctx := context.Background()

	first, err := service.Save(ctx, "alice", domain.TokenPair{Token: "T1", Secret: "S1"})
	require.NoError(t, err)

	second, err := service.Save(ctx, "alice", domain.TokenPair{Token: "T2", Secret: "S2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	profiles, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "T2", profiles[0].Token)
}

func TestProfileService_Delete(t *testing.T) {
	service := NewProfileService(memory.NewProfileStore())
	ctx := context.Background()

	profile, err := service.Save(ctx, "alice", domain.TokenPair{Token: "T", Secret: "S"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, profile.ID))

	_, err = service.GetByName(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileService_NilStore(t *testing.T) {
	service := NewProfileService(nil)

	_, err := service.Save(context.Background(), "alice", domain.TokenPair{Token: "T", Secret: "S"})
	assert.ErrorIs(t, err, domain.ErrNotImplemented)

	_, err = service.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
