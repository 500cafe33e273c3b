package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials_NoToken(t *testing.T) {
	creds := NewCredentials("key", "secret")

	require.NotNil(t, creds)
	assert.Equal(t, "key", creds.ConsumerKey)
	assert.Equal(t, "secret", creds.ConsumerSecret)
	assert.False(t, creds.HasToken())

	pair, ok := creds.Token()
	assert.False(t, ok)
	assert.Empty(t, pair.Token)
	assert.Empty(t, pair.Secret)
}

func TestCredentials_SetToken(t *testing.T) {
	creds := NewCredentials("key", "secret")

	creds.SetToken(TokenPair{Token: "tok", Secret: "sec"})

	require.True(t, creds.HasToken())
	pair, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "tok", pair.Token)
	assert.Equal(t, "sec", pair.Secret)
}

func TestCredentials_SetToken_Replaces(t *testing.T) {
	creds := NewCredentials("key", "secret")
	creds.SetToken(TokenPair{Token: "t1", Secret: "s1"})

	creds.SetToken(TokenPair{Token: "t2", Secret: "s2"})

	pair, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "t2", pair.Token)
	assert.Equal(t, "s2", pair.Secret)
}

func TestCredentials_ClearToken(t *testing.T) {
	creds := NewCredentials("key", "secret")
	creds.SetToken(TokenPair{Token: "tok", Secret: "sec"})

	creds.ClearToken()

	assert.False(t, creds.HasToken())
}

func TestCredentials_TokenCopyIsIndependent(t *testing.T) {
	creds := NewCredentials("key", "secret")
	pair := TokenPair{Token: "tok", Secret: "sec"}
	creds.SetToken(pair)

	// Mutating the caller's copy must not affect the stored pair.
	pair.Token = "changed"

	stored, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "tok", stored.Token)
}
