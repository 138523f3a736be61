// Package ui определяет интерфейсы пользовательских уведомлений
// и навигации.
package ui

import "context"

// Notifier показывает пользователю кратковременное уведомление
// с указанной серьезностью (значения alertIcon конверта).
type Notifier interface {
	Notify(ctx context.Context, message, icon string)
}

// Navigator выполняет переходы между поверхностями приложения.
type Navigator interface {
	// Navigate выполняет обычный переход.
	Navigate(ctx context.Context, path string)
	// HardNavigate выполняет жесткий переход с потерей состояния
	// незавершенных операций.
	HardNavigate(ctx context.Context, path string)
}
