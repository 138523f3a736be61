package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/client/adapters/storage"
	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/app/session"
)

func newStore(t *testing.T) (*session.Store, string) {
	t.Helper()

	dir := t.TempDir()
	stateFile := storage.NewStateFile(filepath.Join(dir, "state.json"))
	tokenFile := storage.NewTokenFile(filepath.Join(dir, "tokens.json"))

	return session.NewStore(stateFile, tokenFile), dir
}

func TestStore_SetAuth(t *testing.T) {
	ctx := context.Background()
	store, dir := newStore(t)

	member := &dto.Member{UserID: "founder01", UserName: "Founder"}
	require.NoError(t, store.SetAuth(ctx, member, "access-1", "refresh-1"))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
	require.NotNil(t, store.Member())
	assert.Equal(t, "founder01", store.Member().UserID)

	// Состояние без токенов, токены отдельным файлом.
	stateRaw, err := os.ReadFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)
	assert.Contains(t, string(stateRaw), "founder01")
	assert.NotContains(t, string(stateRaw), "access-1")
	assert.NotContains(t, string(stateRaw), "refresh-1")

	tokenRaw, err := os.ReadFile(filepath.Join(dir, "tokens.json"))
	require.NoError(t, err)
	assert.Contains(t, string(tokenRaw), "access-1")
	assert.Contains(t, string(tokenRaw), "refresh-1")
}

func TestStore_SetAccessTokenKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))

	store.SetAccessToken(ctx, "access-2")

	assert.Equal(t, "access-2", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "founder01", store.Member().UserID)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))

	assert.True(t, store.Clear(ctx), "first clear reports the transition")
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Nil(t, store.Member())

	assert.False(t, store.Clear(ctx), "second clear is a no-op")
}

func TestStore_HydrateRestoresSession(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stateFile := storage.NewStateFile(filepath.Join(dir, "state.json"))
	tokenFile := storage.NewTokenFile(filepath.Join(dir, "tokens.json"))

	first := session.NewStore(stateFile, tokenFile)
	require.NoError(t, first.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))

	second := session.NewStore(stateFile, tokenFile)
	require.NoError(t, second.Hydrate(ctx))

	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "access-1", second.AccessToken())
	assert.Equal(t, "refresh-1", second.RefreshToken())
	require.NotNil(t, second.Member())
	assert.Equal(t, "founder01", second.Member().UserID)
}

func TestStore_HydrateWithoutTokensStaysAnonymous(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	stateFile := storage.NewStateFile(filepath.Join(dir, "state.json"))
	tokenFile := storage.NewTokenFile(filepath.Join(dir, "tokens.json"))

	first := session.NewStore(stateFile, tokenFile)
	require.NoError(t, first.SetAuth(ctx, &dto.Member{UserID: "founder01"}, "access-1", "refresh-1"))
	require.NoError(t, tokenFile.Clear())

	second := session.NewStore(stateFile, tokenFile)
	require.NoError(t, second.Hydrate(ctx))

	assert.False(t, second.IsAuthenticated(), "persisted flag without live tokens is not a session")
	assert.Empty(t, second.AccessToken())
}

func TestStore_HydrateEmptyStorages(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Hydrate(ctx))

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Member())
}
