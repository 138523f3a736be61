// Package dto содержит формы ответа сервера платформы.
package dto

// Значения поля alertIcon конверта.
const (
	IconSuccess = "success"
	IconWarning = "warning"
	IconError   = "error"
	IconInfo    = "info"
)

// Envelope представляет конверт ответа платформы.
type Envelope struct {
	ClientMsg string `json:"clientMsg,omitempty"`
	AlertIcon string `json:"alertIcon,omitempty"`
	ResData   any    `json:"resData,omitempty"`
}

// OK создает успешный конверт с данными и необязательным сообщением.
func OK(msg string, data any) Envelope {
	env := Envelope{ResData: data}
	if msg != "" {
		env.ClientMsg = msg
		env.AlertIcon = IconSuccess
	}
	return env
}

// Fail создает конверт отказа с сообщением указанной серьезности.
func Fail(msg, icon string) Envelope {
	return Envelope{ClientMsg: msg, AlertIcon: icon}
}
