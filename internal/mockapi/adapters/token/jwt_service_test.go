package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startuphub/internal/mockapi/adapters/token"
	"startuphub/internal/mockapi/config"
)

func newTokenService() *token.Service {
	return token.NewService(config.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestService_GenerateAndValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newTokenService()

	signed, err := svc.GenerateAccessToken(ctx, "founder01")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := svc.Validate(ctx, signed, token.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "founder01", userID)
}

func TestService_ExpiredTokenIsDistinguishable(t *testing.T) {
	ctx := context.Background()
	svc := newTokenService()

	issued := time.Now()
	svc.SetClock(func() time.Time { return issued })

	signed, err := svc.GenerateAccessToken(ctx, "founder01")
	require.NoError(t, err)

	svc.SetClock(func() time.Time { return issued.Add(31 * time.Minute) })

	_, err = svc.Validate(ctx, signed, token.TypeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrExpiredToken)
	assert.NotErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_GarbageTokenIsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newTokenService()

	_, err := svc.Validate(ctx, "not-a-token", token.TypeAccess)

	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_WrongSecretIsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newTokenService()

	signed, err := svc.GenerateAccessToken(ctx, "founder01")
	require.NoError(t, err)

	other := token.NewService(config.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenTTL: 30 * time.Minute,
	})

	_, err = other.Validate(ctx, signed, token.TypeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestService_RefreshTokenCannotActAsAccess(t *testing.T) {
	ctx := context.Background()
	svc := newTokenService()

	refresh, err := svc.GenerateRefreshToken(ctx, "founder01")
	require.NoError(t, err)

	_, err = svc.Validate(ctx, refresh, token.TypeAccess)
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrWrongTokenType)
}
