package storage

import "time"

// SetClock подменяет источник времени кэша токенов в тестах.
func (t *TokenFile) SetClock(now func() time.Time) {
	t.now = now
}
