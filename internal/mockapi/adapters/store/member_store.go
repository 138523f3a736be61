// Package store реализует хранение участников и refresh-токенов
// в Redis.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"startuphub/internal/mockapi/config"
	"startuphub/internal/mockapi/domain"
	"startuphub/pkg/logger"
)

// Префиксы ключей хранилища.
const (
	memberKeyPrefix  = "member:"
	emailKeyPrefix   = "email:"
	refreshKeyPrefix = "refresh:"
)

// Константы сообщений хранилища участников.
const (
	ErrorConnectRedis  = "failed to connect to redis"
	ErrorEncodeMember  = "failed to encode member"
	ErrorDecodeMember  = "failed to decode member"
	ErrorStoreMember   = "failed to store member"
	ErrorLoadMember    = "failed to load member"
	ErrorStoreRefresh  = "failed to store refresh token"
	ErrorLoadRefresh   = "failed to load refresh token"
	ErrorDeleteRefresh = "failed to delete refresh token"
	ErrorCloseRedis    = "failed to close redis connection"
)

// MemberStore хранит участников по идентификатору, индекс почтовых
// адресов и allowlist выданных refresh-токенов с TTL.
type MemberStore struct {
	client *redis.Client
}

// NewMemberStore создает хранилище участников и проверяет соединение.
func NewMemberStore(ctx context.Context, cfg *config.RedisConfig) (*MemberStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorConnectRedis, err)
	}

	return &MemberStore{client: client}, nil
}

// NewMemberStoreWithClient создает хранилище поверх готового клиента.
// Используется тестами с miniredis.
func NewMemberStoreWithClient(client *redis.Client) *MemberStore {
	return &MemberStore{client: client}
}

// Create сохраняет нового участника. Повторный идентификатор дает
// domain.ErrMemberAlreadyExists.
func (s *MemberStore) Create(ctx context.Context, member *domain.Member) error {
	data, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorEncodeMember, err)
	}

	ok, err := s.client.SetNX(ctx, memberKeyPrefix+member.UserID, data, 0).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorStoreMember, err)
	}
	if !ok {
		return domain.ErrMemberAlreadyExists
	}

	if err := s.client.Set(ctx, emailKeyPrefix+member.UserEmail, member.UserID, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrorStoreMember, err)
	}

	logger.Log(ctx).Info(ctx, "member created", zap.String("user_id", member.UserID))

	return nil
}

// Get возвращает участника по идентификатору.
func (s *MemberStore) Get(ctx context.Context, userID string) (*domain.Member, error) {
	data, err := s.client.Get(ctx, memberKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrorLoadMember, err)
	}

	var member domain.Member
	if err := json.Unmarshal(data, &member); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorDecodeMember, err)
	}

	return &member, nil
}

// Update перезаписывает существующего участника.
func (s *MemberStore) Update(ctx context.Context, member *domain.Member) error {
	if _, err := s.Get(ctx, member.UserID); err != nil {
		return err
	}

	data, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorEncodeMember, err)
	}

	if err := s.client.Set(ctx, memberKeyPrefix+member.UserID, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrorStoreMember, err)
	}

	return nil
}

// CountUserID возвращает число участников с указанным идентификатором.
func (s *MemberStore) CountUserID(ctx context.Context, userID string) (int, error) {
	n, err := s.client.Exists(ctx, memberKeyPrefix+userID).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorLoadMember, err)
	}
	return int(n), nil
}

// CountUserEmail возвращает число участников с указанной почтой.
func (s *MemberStore) CountUserEmail(ctx context.Context, userEmail string) (int, error) {
	n, err := s.client.Exists(ctx, emailKeyPrefix+userEmail).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorLoadMember, err)
	}
	return int(n), nil
}

// SaveRefreshToken сохраняет выданный refresh-токен участника с TTL.
// Новый вход вытесняет предыдущий токен.
func (s *MemberStore) SaveRefreshToken(ctx context.Context, userID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKeyPrefix+userID, token, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrorStoreRefresh, err)
	}
	return nil
}

// GetRefreshToken возвращает выданный refresh-токен участника.
func (s *MemberStore) GetRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := s.client.Get(ctx, refreshKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrRefreshTokenUnknown
		}
		return "", fmt.Errorf("%s: %w", ErrorLoadRefresh, err)
	}
	return token, nil
}

// DeleteRefreshToken отзывает refresh-токен участника.
func (s *MemberStore) DeleteRefreshToken(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, refreshKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrorDeleteRefresh, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (s *MemberStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorCloseRedis, err)
	}
	return nil
}
