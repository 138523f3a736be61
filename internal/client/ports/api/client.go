// Package api определяет интерфейс конвейера запросов и дескриптор
// исходящего запроса.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"startuphub/internal/client/app/dto"
)

// Имена заголовков с зарезервированным значением для конвейера.
const (
	HeaderAuthorization = "Authorization"
	HeaderRefreshToken  = "refreshToken"
	HeaderRequestID     = "X-Request-Id"
)

// Request представляет дескриптор исходящего запроса. Дескриптор
// принадлежит единственному вызову, который его создал; поле Retried
// выставляется конвейером и защищает от бесконечного цикла повторов.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    any

	// Retried помечает запрос, уже переотправленный после обновления
	// access-токена. Повторно не сбрасывается.
	Retried bool
}

// NewRequest создает дескриптор запроса с инициализированными заголовками.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Query:   url.Values{},
		Headers: http.Header{},
	}
}

// Response представляет завершенный обмен: статус, сырое тело и
// конверт, декодированный из тела по мере возможности.
type Response struct {
	StatusCode int
	Body       []byte
	Envelope   dto.Envelope
}

// Decode декодирует сырое тело ответа в v. Используется для эндпоинтов,
// отвечающих без конверта.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// Client определяет интерфейс конвейера запросов: прикрепление токена,
// обработка конверта и прозрачное обновление access-токена.
type Client interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}
