// Package session определяет интерфейсы сессионного контекста,
// необходимые конвейеру запросов.
package session

import (
	"context"

	"startuphub/internal/client/app/dto"
)

// Credentials предоставляет конвейеру доступ к текущим учетным данным.
// Запись access-токена доступна только ветке обновления токена.
type Credentials interface {
	AccessToken() string
	RefreshToken() string
	Member() *dto.Member
	SetAccessToken(ctx context.Context, token string)
}

// Terminator завершает сессию из невосстановимых веток конвейера.
type Terminator interface {
	ForceLogout(ctx context.Context, reason string)
}
