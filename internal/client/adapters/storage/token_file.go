package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Время жизни зеркальных копий токенов.
const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Сообщения об ошибках кэша токенов.
const (
	ErrorTokenEncode = "failed to encode token cache"
	ErrorTokenWrite  = "failed to write token cache file"
	ErrorTokenRead   = "failed to read token cache file"
	ErrorTokenDecode = "failed to decode token cache"
	ErrorTokenClear  = "failed to remove token cache file"
)

type tokenEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type tokenCache struct {
	Access  *tokenEntry `json:"access,omitempty"`
	Refresh *tokenEntry `json:"refresh,omitempty"`
}

// TokenFile хранит зеркальные копии токенов в отдельном от состояния
// сессии файле. Каждая запись несет абсолютный срок годности и после
// его истечения ведет себя как отсутствующая.
type TokenFile struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewTokenFile создает кэш токенов по указанному пути.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path, now: time.Now}
}

// SetAccessToken сохраняет access-токен со сроком годности в сутки.
func (t *TokenFile) SetAccessToken(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cache, err := t.load()
	if err != nil {
		return err
	}

	cache.Access = &tokenEntry{Value: token, ExpiresAt: t.now().Add(AccessTokenTTL)}

	return t.save(cache)
}

// SetRefreshToken сохраняет refresh-токен со сроком годности в семь суток.
func (t *TokenFile) SetRefreshToken(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cache, err := t.load()
	if err != nil {
		return err
	}

	cache.Refresh = &tokenEntry{Value: token, ExpiresAt: t.now().Add(RefreshTokenTTL)}

	return t.save(cache)
}

// AccessToken возвращает access-токен, если он есть и не истек.
func (t *TokenFile) AccessToken() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cache, err := t.load()
	if err != nil {
		return "", false
	}

	return t.alive(cache.Access)
}

// RefreshToken возвращает refresh-токен, если он есть и не истек.
func (t *TokenFile) RefreshToken() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cache, err := t.load()
	if err != nil {
		return "", false
	}

	return t.alive(cache.Refresh)
}

// Clear удаляет файл кэша токенов.
func (t *TokenFile) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.Remove(t.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", ErrorTokenClear, err)
	}

	return nil
}

func (t *TokenFile) alive(entry *tokenEntry) (string, bool) {
	if entry == nil || entry.Value == "" {
		return "", false
	}
	if t.now().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Value, true
}

func (t *TokenFile) load() (*tokenCache, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &tokenCache{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrorTokenRead, err)
	}

	var cache tokenCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorTokenDecode, err)
	}

	return &cache, nil
}

func (t *TokenFile) save(cache *tokenCache) error {
	data, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorTokenEncode, err)
	}

	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		return fmt.Errorf("%s: %w", ErrorTokenWrite, err)
	}

	return nil
}
