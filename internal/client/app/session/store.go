// Package session реализует хранилище учетных данных и контроллер
// жизненного цикла сессии.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/ports/storage"
	"startuphub/pkg/logger"
)

// Сообщения журнала хранилища учетных данных.
const (
	LogAuthStored    = "credentials stored"
	LogAuthCleared   = "credentials cleared"
	LogStateHydrated = "session state hydrated"
	LogStateEmpty    = "no persisted session state"
)

// Сообщения об ошибках хранилища учетных данных.
const (
	ErrorPersistState = "failed to persist session state"
	ErrorMirrorToken  = "failed to mirror token to cache"
	ErrorClearState   = "failed to clear persisted state"
	ErrorHydrateState = "failed to hydrate session state"
)

// Store хранит учетные данные текущей сессии. Все изменения проходят
// под мьютексом: смежные поля меняются атомарно. Состояние без токенов
// зеркалируется в StateStorage, токены отдельно в TokenStorage.
type Store struct {
	mu sync.RWMutex

	member          *dto.Member
	accessToken     string
	refreshToken    string
	isAuthenticated bool

	state  storage.StateStorage
	tokens storage.TokenStorage
}

// NewStore создает хранилище учетных данных поверх указанных хранилищ.
func NewStore(state storage.StateStorage, tokens storage.TokenStorage) *Store {
	return &Store{state: state, tokens: tokens}
}

// SetAuth сохраняет учетные данные после успешного входа: участника,
// пару токенов и флаг аутентификации одним переходом.
func (s *Store) SetAuth(ctx context.Context, member *dto.Member, accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.member = member
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.isAuthenticated = true

	if err := s.persistLocked(); err != nil {
		return err
	}

	if err := s.tokens.SetAccessToken(accessToken); err != nil {
		return fmt.Errorf("%s: %w", ErrorMirrorToken, err)
	}
	if err := s.tokens.SetRefreshToken(refreshToken); err != nil {
		return fmt.Errorf("%s: %w", ErrorMirrorToken, err)
	}

	logger.Log(ctx).Info(ctx, LogAuthStored, zap.String("user_id", member.UserID))

	return nil
}

// SetAccessToken заменяет access-токен после тихого обновления.
// Остальные учетные данные не затрагиваются.
func (s *Store) SetAccessToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = token

	if err := s.tokens.SetAccessToken(token); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorMirrorToken, zap.Error(err))
	}
}

// AccessToken возвращает текущий access-токен.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken возвращает текущий refresh-токен.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Member возвращает участника текущей сессии.
func (s *Store) Member() *dto.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.member
}

// IsAuthenticated сообщает, установлена ли сессия.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// Clear сбрасывает учетные данные и очищает оба хранилища.
// Возвращает прежнее значение флага аутентификации.
func (s *Store) Clear(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.isAuthenticated

	s.member = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.isAuthenticated = false

	if err := s.state.Clear(); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorClearState, zap.Error(err))
	}
	if err := s.tokens.Clear(); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorClearState, zap.Error(err))
	}

	logger.Log(ctx).Info(ctx, LogAuthCleared)

	return was
}

// Hydrate восстанавливает сессию из долговременных хранилищ при
// запуске. Сессия считается установленной, только если сохраненное
// состояние помечено аутентифицированным и в кэше жив хотя бы один
// токен.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted, err := s.state.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorHydrateState, err)
	}

	access, hasAccess := s.tokens.AccessToken()
	refresh, hasRefresh := s.tokens.RefreshToken()

	if !persisted.State.IsAuthenticated || (!hasAccess && !hasRefresh) {
		logger.Log(ctx).Info(ctx, LogStateEmpty)
		return nil
	}

	s.member = persisted.State.User
	s.accessToken = access
	s.refreshToken = refresh
	s.isAuthenticated = true

	logger.Log(ctx).Info(ctx, LogStateHydrated,
		zap.Bool("has_access_token", hasAccess),
		zap.Bool("has_refresh_token", hasRefresh))

	return nil
}

func (s *Store) persistLocked() error {
	persisted := &dto.PersistedState{}
	persisted.State.User = s.member
	persisted.State.IsAuthenticated = s.isAuthenticated

	if err := s.state.Save(persisted); err != nil {
		return fmt.Errorf("%s: %w", ErrorPersistState, err)
	}

	return nil
}
