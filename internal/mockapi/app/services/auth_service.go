// Package services содержит прикладную логику сервера платформы.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"startuphub/internal/mockapi/adapters/store"
	"startuphub/internal/mockapi/adapters/token"
	"startuphub/internal/mockapi/config"
	"startuphub/internal/mockapi/domain"
	"startuphub/pkg/logger"
)

// Константы сообщений сервиса авторизации.
const (
	LogServiceLogin   = "auth service: login"
	LogServiceRefresh = "auth service: refresh"
	LogLoginOK        = "login succeeded"
	LogRefreshOK      = "access token reissued"

	ErrorLoginFailed    = "login failed"
	ErrorRefreshFailed  = "refresh failed"
	ErrorHashPassword   = "failed to hash password"
	ErrorGenerateTokens = "failed to generate token pair"
)

// AuthService выполняет вход и обновление access-токена.
type AuthService struct {
	store  *store.MemberStore
	tokens *token.Service
	jwtCfg config.JWTConfig
}

// NewAuthService создает сервис авторизации.
func NewAuthService(memberStore *store.MemberStore, tokenService *token.Service, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		store:  memberStore,
		tokens: tokenService,
		jwtCfg: jwtCfg,
	}
}

// Login проверяет учетные данные и выпускает пару токенов. Выданный
// refresh-токен попадает в allowlist и вытесняет предыдущий.
func (s *AuthService) Login(ctx context.Context, userID, userPw string) (*domain.Member, string, string, error) {
	log := logger.Log(ctx).With(zap.String("user_id", userID))
	log.Info(ctx, LogServiceLogin)

	member, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return nil, "", "", domain.ErrInvalidCredentials
		}
		return nil, "", "", fmt.Errorf("%s: %w", ErrorLoginFailed, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(userPw)); err != nil {
		return nil, "", "", domain.ErrInvalidCredentials
	}

	access, err := s.tokens.GenerateAccessToken(ctx, userID)
	if err != nil {
		return nil, "", "", fmt.Errorf("%s: %w", ErrorGenerateTokens, err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, "", "", fmt.Errorf("%s: %w", ErrorGenerateTokens, err)
	}

	if err := s.store.SaveRefreshToken(ctx, userID, refresh, s.jwtCfg.RefreshTokenTTL); err != nil {
		return nil, "", "", fmt.Errorf("%s: %w", ErrorLoginFailed, err)
	}

	log.Info(ctx, LogLoginOK)

	return member, access, refresh, nil
}

// Refresh проверяет refresh-токен по подписи и allowlist и выпускает
// новый access-токен.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	log := logger.Log(ctx)
	log.Info(ctx, LogServiceRefresh)

	userID, err := s.tokens.Validate(ctx, refreshToken, token.TypeRefresh)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorRefreshFailed, err)
	}

	issued, err := s.store.GetRefreshToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorRefreshFailed, err)
	}
	if issued != refreshToken {
		return "", fmt.Errorf("%s: %w", ErrorRefreshFailed, domain.ErrRefreshTokenUnknown)
	}

	access, err := s.tokens.GenerateAccessToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorGenerateTokens, err)
	}

	log.Info(ctx, LogRefreshOK, zap.String("user_id", userID))

	return access, nil
}

// HashPassword возвращает bcrypt-хэш пароля.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorHashPassword, err)
	}
	return string(hash), nil
}
