package storage_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/client/adapters/storage"
)

func newTokenFile(t *testing.T) *storage.TokenFile {
	t.Helper()
	return storage.NewTokenFile(filepath.Join(t.TempDir(), "tokens.json"))
}

func TestTokenFile_SetAndGet(t *testing.T) {
	tf := newTokenFile(t)

	require.NoError(t, tf.SetAccessToken("access-1"))
	require.NoError(t, tf.SetRefreshToken("refresh-1"))

	access, ok := tf.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "access-1", access)

	refresh, ok := tf.RefreshToken()
	require.True(t, ok)
	assert.Equal(t, "refresh-1", refresh)
}

func TestTokenFile_MissingTokens(t *testing.T) {
	tf := newTokenFile(t)

	_, ok := tf.AccessToken()
	assert.False(t, ok)

	_, ok = tf.RefreshToken()
	assert.False(t, ok)
}

func TestTokenFile_AccessTokenExpiresAfterOneDay(t *testing.T) {
	tf := newTokenFile(t)

	now := time.Now()
	tf.SetClock(func() time.Time { return now })
	require.NoError(t, tf.SetAccessToken("access-1"))

	tf.SetClock(func() time.Time { return now.Add(23 * time.Hour) })
	_, ok := tf.AccessToken()
	assert.True(t, ok)

	tf.SetClock(func() time.Time { return now.Add(25 * time.Hour) })
	_, ok = tf.AccessToken()
	assert.False(t, ok)
}

func TestTokenFile_RefreshTokenExpiresAfterSevenDays(t *testing.T) {
	tf := newTokenFile(t)

	now := time.Now()
	tf.SetClock(func() time.Time { return now })
	require.NoError(t, tf.SetRefreshToken("refresh-1"))

	tf.SetClock(func() time.Time { return now.Add(6 * 24 * time.Hour) })
	_, ok := tf.RefreshToken()
	assert.True(t, ok)

	tf.SetClock(func() time.Time { return now.Add(8 * 24 * time.Hour) })
	_, ok = tf.RefreshToken()
	assert.False(t, ok)
}

func TestTokenFile_SetAccessKeepsRefresh(t *testing.T) {
	tf := newTokenFile(t)

	require.NoError(t, tf.SetRefreshToken("refresh-1"))
	require.NoError(t, tf.SetAccessToken("access-1"))
	require.NoError(t, tf.SetAccessToken("access-2"))

	access, ok := tf.AccessToken()
	require.True(t, ok)
	assert.Equal(t, "access-2", access)

	refresh, ok := tf.RefreshToken()
	require.True(t, ok)
	assert.Equal(t, "refresh-1", refresh)
}

func TestTokenFile_Clear(t *testing.T) {
	tf := newTokenFile(t)

	require.NoError(t, tf.SetAccessToken("access-1"))
	require.NoError(t, tf.Clear())

	_, ok := tf.AccessToken()
	assert.False(t, ok)

	// Clear on a missing file is not an error.
	require.NoError(t, tf.Clear())
}
