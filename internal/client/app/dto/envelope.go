// Package dto содержит DTO для обмена данными с сервером платформы.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Значения поля alertIcon в конверте ответа.
const (
	IconSuccess = "success"
	IconWarning = "warning"
	IconError   = "error"
	IconInfo    = "info"
)

// ErrNoResData возвращается при попытке декодировать отсутствующее поле resData.
var errNoResData = fmt.Errorf("envelope has no resData")

// Envelope представляет конверт ответа сервера. Поля clientMsg и alertIcon
// опциональны: их наличие проверяется явно, пустая строка означает отсутствие
// значения.
type Envelope struct {
	ClientMsg string          `json:"clientMsg,omitempty"`
	AlertIcon string          `json:"alertIcon,omitempty"`
	ResData   json.RawMessage `json:"resData,omitempty"`
}

// HasMessage сообщает, содержит ли конверт сообщение для пользователя.
func (e *Envelope) HasMessage() bool {
	return e.ClientMsg != ""
}

// HasData сообщает, содержит ли конверт полезную нагрузку.
func (e *Envelope) HasData() bool {
	return len(e.ResData) > 0 && !bytes.Equal(e.ResData, []byte("null"))
}

// IsSuccess сообщает, помечен ли конверт как успешный.
func (e *Envelope) IsSuccess() bool {
	return e.AlertIcon == IconSuccess
}

// Icon возвращает alertIcon конверта или запасное значение.
func (e *Envelope) Icon(fallback string) string {
	if e.AlertIcon != "" {
		return e.AlertIcon
	}
	return fallback
}

// DecodeResData декодирует полезную нагрузку конверта в v.
func (e *Envelope) DecodeResData(v any) error {
	if !e.HasData() {
		return errNoResData
	}
	if err := json.Unmarshal(e.ResData, v); err != nil {
		return fmt.Errorf("decoding resData: %w", err)
	}
	return nil
}
