// Package ui реализует терминальные уведомления и навигацию.
package ui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"startuphub/pkg/logger"
)

// Сообщения журнала терминального интерфейса.
const (
	LogNavigate     = "navigating"
	LogHardNavigate = "hard navigating"
)

// Terminal пишет уведомления в указанный поток и отслеживает текущую
// поверхность. Жесткий переход отличается от обычного только пометкой
// в журнале: терять в терминале нечего.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	current string
}

// NewTerminal создает терминальный интерфейс поверх указанного потока.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Notify показывает уведомление с указанной серьезностью.
func (t *Terminal) Notify(_ context.Context, message, icon string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "[%s] %s\n", icon, message)
}

// Navigate выполняет обычный переход.
func (t *Terminal) Navigate(ctx context.Context, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = path
	logger.Log(ctx).Info(ctx, LogNavigate, zap.String("path", path))
}

// HardNavigate выполняет жесткий переход.
func (t *Terminal) HardNavigate(ctx context.Context, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = path
	logger.Log(ctx).Info(ctx, LogHardNavigate, zap.String("path", path))
}

// Current возвращает текущую поверхность.
func (t *Terminal) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.current
}
