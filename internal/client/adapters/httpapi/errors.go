package httpapi

import (
	"fmt"

	"startuphub/internal/client/app/dto"
)

// APIError представляет ответ платформы с неуспешным статусом.
// Конверт сохраняется, чтобы вызывающий код мог прочесть clientMsg.
type APIError struct {
	StatusCode int
	Envelope   dto.Envelope
}

func (e *APIError) Error() string {
	if e.Envelope.HasMessage() {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Envelope.ClientMsg)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}
