// Package storage определяет интерфейсы долговременного хранения
// состояния сессии и кэша токенов.
package storage

import "startuphub/internal/client/app/dto"

// StateStorage хранит восстанавливаемое между перезапусками состояние
// сессии. Сырые токены в него не записываются.
type StateStorage interface {
	Save(state *dto.PersistedState) error
	Load() (*dto.PersistedState, error)
	Clear() error
}

// TokenStorage хранит зеркальные копии токенов с ограниченным временем
// жизни: access-токен на сутки, refresh-токен на семь суток.
type TokenStorage interface {
	SetAccessToken(token string) error
	SetRefreshToken(token string) error
	AccessToken() (string, bool)
	RefreshToken() (string, bool)
	Clear() error
}
