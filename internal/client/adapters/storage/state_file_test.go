package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/client/adapters/storage"
	"startuphub/internal/client/app/dto"
)

func newStateFile(t *testing.T) *storage.StateFile {
	t.Helper()
	return storage.NewStateFile(filepath.Join(t.TempDir(), "state.json"))
}

func TestStateFile_SaveAndLoad(t *testing.T) {
	s := newStateFile(t)

	state := &dto.PersistedState{}
	state.State.User = &dto.Member{UserID: "founder01", UserName: "Founder", UserLevel: 1}
	state.State.IsAuthenticated = true

	require.NoError(t, s.Save(state))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded.State.User)
	assert.Equal(t, "founder01", loaded.State.User.UserID)
	assert.True(t, loaded.State.IsAuthenticated)
}

func TestStateFile_LoadMissingFile(t *testing.T) {
	s := newStateFile(t)

	loaded, err := s.Load()

	require.NoError(t, err)
	assert.Nil(t, loaded.State.User)
	assert.False(t, loaded.State.IsAuthenticated)
}

func TestStateFile_NeverContainsTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := storage.NewStateFile(path)

	state := &dto.PersistedState{}
	state.State.User = &dto.Member{UserID: "founder01"}
	state.State.IsAuthenticated = true
	require.NoError(t, s.Save(state))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "accessToken")
	assert.NotContains(t, string(raw), "refreshToken")
	assert.NotContains(t, string(raw), "userPw")
}

func TestStateFile_Clear(t *testing.T) {
	s := newStateFile(t)

	state := &dto.PersistedState{}
	state.State.IsAuthenticated = true
	require.NoError(t, s.Save(state))

	require.NoError(t, s.Clear())

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.False(t, loaded.State.IsAuthenticated)

	// Clear on a missing file is not an error.
	require.NoError(t, s.Clear())
}
