package token

import "time"

// SetClock подменяет источник времени сервиса токенов в тестах.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}
