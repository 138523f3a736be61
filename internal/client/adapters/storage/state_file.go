// Package storage реализует файловое хранение состояния сессии и
// кэша токенов.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"startuphub/internal/client/app/dto"
)

// Сообщения об ошибках хранилища состояния.
const (
	ErrorStateEncode = "failed to encode session state"
	ErrorStateWrite  = "failed to write session state file"
	ErrorStateRead   = "failed to read session state file"
	ErrorStateDecode = "failed to decode session state"
	ErrorStateClear  = "failed to remove session state file"
)

// StateFile хранит восстанавливаемое состояние сессии в JSON-файле.
// Запись атомарна: файл подменяется через rename.
type StateFile struct {
	mu   sync.Mutex
	path string
}

// NewStateFile создает хранилище состояния по указанному пути.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Save сохраняет состояние сессии. Токены в сохраняемой форме
// отсутствуют по построению dto.PersistedState.
func (s *StateFile) Save(state *dto.PersistedState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorStateEncode, err)
	}

	return s.writeAtomic(data)
}

// Load читает сохраненное состояние. Если файла нет, возвращает
// пустое состояние без ошибки.
func (s *StateFile) Load() (*dto.PersistedState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &dto.PersistedState{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrorStateRead, err)
	}

	var state dto.PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorStateDecode, err)
	}

	return &state, nil
}

// Clear удаляет файл состояния.
func (s *StateFile) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", ErrorStateClear, err)
	}

	return nil
}

func (s *StateFile) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", ErrorStateWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorStateWrite, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", ErrorStateWrite, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", ErrorStateWrite, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", ErrorStateWrite, err)
	}

	return nil
}
