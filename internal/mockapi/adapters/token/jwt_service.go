// Package token реализует выпуск и проверку JWT токенов сервера
// платформы.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"startuphub/internal/mockapi/config"
	"startuphub/pkg/logger"
)

// Типы выпускаемых токенов.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Ошибки проверки токенов.
var (
	ErrExpiredToken   = errors.New("token has expired")
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Константы сообщений сервиса токенов.
const (
	msgGeneratingToken = "generating token"
	msgTokenValidated  = "token validated"
	errSigningToken    = "error signing token"
	errParsingToken    = "error parsing token"
)

// Claims определяет полезную нагрузку токена платформы.
type Claims struct {
	UserID    string `json:"userId"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// Service выпускает и проверяет токены HS256.
type Service struct {
	cfg config.JWTConfig
	now func() time.Time
}

// NewService создает сервис токенов.
func NewService(cfg config.JWTConfig) *Service {
	return &Service{cfg: cfg, now: time.Now}
}

// GenerateAccessToken выпускает access-токен участника.
func (s *Service) GenerateAccessToken(ctx context.Context, userID string) (string, error) {
	return s.generate(ctx, userID, TypeAccess, s.cfg.AccessTokenTTL)
}

// GenerateRefreshToken выпускает refresh-токен участника.
func (s *Service) GenerateRefreshToken(ctx context.Context, userID string) (string, error) {
	return s.generate(ctx, userID, TypeRefresh, s.cfg.RefreshTokenTTL)
}

func (s *Service) generate(ctx context.Context, userID, tokenType string, ttl time.Duration) (string, error) {
	log := logger.Log(ctx).With(zap.String("user_id", userID), zap.String("token_type", tokenType))
	log.Debug(ctx, msgGeneratingToken)

	now := s.now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", errSigningToken, err)
	}

	return signed, nil
}

// Validate проверяет токен указанного типа и возвращает идентификатор
// участника. Истекший токен отличим от недействительного.
func (s *Service) Validate(ctx context.Context, tokenString, tokenType string) (string, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%s: %w", errParsingToken, ErrExpiredToken)
		}
		return "", fmt.Errorf("%s: %w", errParsingToken, ErrInvalidToken)
	}

	if !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.TokenType != tokenType {
		return "", ErrWrongTokenType
	}

	logger.Log(ctx).Debug(ctx, msgTokenValidated, zap.String("user_id", claims.UserID))

	return claims.UserID, nil
}
