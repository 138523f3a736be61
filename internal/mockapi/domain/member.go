// Package domain содержит доменные сущности и ошибки сервера платформы.
package domain

import "errors"

// Ошибки домена участников.
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("member already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRefreshTokenUnknown = errors.New("refresh token unknown")
)

// Member представляет участника платформы. Пароль хранится только
// в виде bcrypt-хэша.
type Member struct {
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	PasswordHash string `json:"passwordHash"`
	UserPhone    string `json:"userPhone"`
	UserEmail    string `json:"userEmail"`
	UserAddr     string `json:"userAddr"`
	UserLevel    int    `json:"userLevel"`
	ReportCount  int    `json:"reportCount"`
}

// Public возвращает представление участника для передачи клиенту:
// без хэша пароля, c wire-именами полей платформы.
func (m *Member) Public() map[string]any {
	return map[string]any{
		"userId":      m.UserID,
		"userName":    m.UserName,
		"userPhone":   m.UserPhone,
		"userEmail":   m.UserEmail,
		"userAddr":    m.UserAddr,
		"userLevel":   m.UserLevel,
		"reportCount": m.ReportCount,
	}
}
