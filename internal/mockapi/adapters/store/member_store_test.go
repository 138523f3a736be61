package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/mockapi/adapters/store"
	"startuphub/internal/mockapi/domain"
)

func newTestStore(t *testing.T) (*store.MemberStore, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return store.NewMemberStoreWithClient(client), s
}

func testMember() *domain.Member {
	return &domain.Member{
		UserID:       "founder01",
		UserName:     "Founder",
		PasswordHash: "$2a$10$hash",
		UserEmail:    "founder@startuphub.dev",
		UserLevel:    1,
	}
}

func TestMemberStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	memberStore, _ := newTestStore(t)

	require.NoError(t, memberStore.Create(ctx, testMember()))

	member, err := memberStore.Get(ctx, "founder01")
	require.NoError(t, err)
	assert.Equal(t, "Founder", member.UserName)
	assert.Equal(t, "founder@startuphub.dev", member.UserEmail)
}

func TestMemberStore_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	memberStore, _ := newTestStore(t)

	require.NoError(t, memberStore.Create(ctx, testMember()))

	err := memberStore.Create(ctx, testMember())
	assert.ErrorIs(t, err, domain.ErrMemberAlreadyExists)
}

func TestMemberStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	memberStore, _ := newTestStore(t)

	_, err := memberStore.Get(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberStore_Counts(t *testing.T) {
	ctx := context.Background()
	memberStore, _ := newTestStore(t)

	require.NoError(t, memberStore.Create(ctx, testMember()))

	n, err := memberStore.CountUserID(ctx, "founder01")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = memberStore.CountUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = memberStore.CountUserEmail(ctx, "founder@startuphub.dev")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemberStore_RefreshTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	memberStore, _ := newTestStore(t)

	require.NoError(t, memberStore.SaveRefreshToken(ctx, "founder01", "refresh-1", time.Hour))

	token, err := memberStore.GetRefreshToken(ctx, "founder01")
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", token)

	// Новый вход вытесняет предыдущий токен.
	require.NoError(t, memberStore.SaveRefreshToken(ctx, "founder01", "refresh-2", time.Hour))
	token, err = memberStore.GetRefreshToken(ctx, "founder01")
	require.NoError(t, err)
	assert.Equal(t, "refresh-2", token)

	require.NoError(t, memberStore.DeleteRefreshToken(ctx, "founder01"))
	_, err = memberStore.GetRefreshToken(ctx, "founder01")
	assert.ErrorIs(t, err, domain.ErrRefreshTokenUnknown)
}

func TestMemberStore_RefreshTokenExpires(t *testing.T) {
	ctx := context.Background()
	memberStore, mr := newTestStore(t)

	require.NoError(t, memberStore.SaveRefreshToken(ctx, "founder01", "refresh-1", time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := memberStore.GetRefreshToken(ctx, "founder01")
	assert.ErrorIs(t, err, domain.ErrRefreshTokenUnknown)
}
