// Package httpapi реализует конвейер запросов к платформе: прикрепление
// bearer-токена, обработку конверта ответа и прозрачное обновление
// access-токена с единственным повтором запроса.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/ports/api"
	"startuphub/internal/client/ports/session"
	"startuphub/internal/client/ports/storage"
	"startuphub/internal/client/ports/ui"
	"startuphub/pkg/logger"
)

// Сообщения журнала конвейера.
const (
	LogRequestIssued      = "issuing api request"
	LogRequestFailed      = "api request failed"
	LogTokenRehydrated    = "access token rehydrated from token cache"
	LogTokenRefreshStart  = "access token expired, refreshing"
	LogTokenRefreshSkip   = "access token already refreshed by concurrent request"
	LogTokenRefreshDone   = "access token refreshed, retrying request"
	LogRefreshExpired     = "refresh token expired, terminating session"
	LogTokenMismatch      = "token mismatch, terminating session"
	LogMalformedTokenData = "refresh response carried no usable token"
)

// Сообщения об ошибках конвейера.
const (
	ErrorEncodeBody   = "failed to encode request body"
	ErrorBuildRequest = "failed to build http request"
	ErrorTransport    = "request transport failed"
	ErrorReadBody     = "failed to read response body"
	ErrorRefreshCall  = "token refresh call failed"
)

// Причины принудительного завершения сессии и запасные тексты
// уведомлений.
const (
	ReasonSessionExpired = "Your session has expired. Please log in again."
	ReasonTokenMismatch  = "Authentication failed. Please log in again."
)

const refreshPath = "/member/refresh"

// DefaultTimeout используется при нулевом таймауте в конфигурации.
const DefaultTimeout = 15 * time.Second

// Pipeline реализует api.Client поверх net/http. Обновление
// access-токена коалесцируется: одновременные запросы с истекшим
// токеном выполняют один вызов обновления.
type Pipeline struct {
	baseURL    string
	httpClient *http.Client
	creds      session.Credentials
	tokens     storage.TokenStorage
	notifier   ui.Notifier

	mu         sync.RWMutex
	terminator session.Terminator

	refreshMu sync.Mutex
}

// NewPipeline создает конвейер запросов. Terminator привязывается
// отдельно через BindTerminator, так как контроллер сессии сам
// зависит от конвейера.
func NewPipeline(baseURL string, timeout time.Duration, creds session.Credentials, tokens storage.TokenStorage, notifier ui.Notifier) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pipeline{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
		tokens:     tokens,
		notifier:   notifier,
	}
}

// BindTerminator привязывает обработчик принудительного завершения
// сессии. До привязки невосстановимые ветки ограничиваются журналом.
func (p *Pipeline) BindTerminator(t session.Terminator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.terminator = t
}

// Do выполняет запрос через конвейер.
func (p *Pipeline) Do(ctx context.Context, req *api.Request) (*api.Response, error) {
	ctx = p.ensureRequestID(ctx, req)

	p.attachToken(ctx, req)

	logger.Log(ctx).Debug(ctx, LogRequestIssued,
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Bool("retried", req.Retried))

	resp, err := p.exchange(ctx, req)
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogRequestFailed, zap.String("path", req.Path), zap.Error(err))
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if resp.Envelope.HasMessage() {
			p.notifier.Notify(ctx, resp.Envelope.ClientMsg, resp.Envelope.Icon(dto.IconSuccess))
		}
		return resp, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Envelope: resp.Envelope}

	switch resp.StatusCode {
	case http.StatusForbidden:
		if hasRefreshHeader(req) || req.Retried {
			p.terminate(ctx, LogRefreshExpired, resp.Envelope, ReasonSessionExpired)
			return nil, apiErr
		}
		return p.refreshAndRetry(ctx, req, apiErr)
	case http.StatusUnauthorized:
		p.terminate(ctx, LogTokenMismatch, resp.Envelope, ReasonTokenMismatch)
		return nil, apiErr
	default:
		if resp.Envelope.HasMessage() {
			p.notifier.Notify(ctx, resp.Envelope.ClientMsg, resp.Envelope.Icon(dto.IconError))
		}
		return nil, apiErr
	}
}

// refreshAndRetry выполняет тихое обновление access-токена и повторяет
// исходный запрос ровно один раз. Сам вызов обновления проходит через
// конвейер: его 403 попадает в ветку истекшего refresh-токена.
func (p *Pipeline) refreshAndRetry(ctx context.Context, req *api.Request, cause *APIError) (*api.Response, error) {
	stale := req.Headers.Get(api.HeaderAuthorization)

	p.refreshMu.Lock()

	current := p.creds.AccessToken()
	if current != "" && bearer(current) != stale {
		// Параллельный запрос уже обновил токен.
		p.refreshMu.Unlock()
		logger.Log(ctx).Debug(ctx, LogTokenRefreshSkip)
		return p.retry(ctx, req, current)
	}

	logger.Log(ctx).Info(ctx, LogTokenRefreshStart, zap.String("path", req.Path))

	token, err := p.callRefresh(ctx)
	if err != nil {
		p.refreshMu.Unlock()
		return nil, err
	}
	if token == "" {
		p.refreshMu.Unlock()
		logger.Log(ctx).Warn(ctx, LogMalformedTokenData)
		return nil, cause
	}

	p.creds.SetAccessToken(ctx, token)
	p.refreshMu.Unlock()

	logger.Log(ctx).Info(ctx, LogTokenRefreshDone, zap.String("path", req.Path))

	return p.retry(ctx, req, token)
}

func (p *Pipeline) retry(ctx context.Context, req *api.Request, token string) (*api.Response, error) {
	req.Retried = true
	req.Headers.Set(api.HeaderAuthorization, bearer(token))
	return p.Do(ctx, req)
}

// callRefresh запрашивает новый access-токен. Идентичность участника
// передается в теле, refresh-токен в одноименном заголовке.
func (p *Pipeline) callRefresh(ctx context.Context) (string, error) {
	refresh := p.creds.RefreshToken()
	if refresh == "" {
		if cached, ok := p.tokens.RefreshToken(); ok {
			refresh = cached
		}
	}

	req := api.NewRequest(http.MethodPost, refreshPath)
	req.Headers.Set(api.HeaderRefreshToken, refresh)
	req.Body = p.creds.Member()

	resp, err := p.Do(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrorRefreshCall, err)
	}

	var token string
	if err := resp.Envelope.DecodeResData(&token); err != nil {
		return "", nil
	}

	return token, nil
}

// attachToken прикрепляет bearer-токен к запросу, если он еще не
// прикреплен. При пустых учетных данных токен восстанавливается из
// кэша токенов.
func (p *Pipeline) attachToken(ctx context.Context, req *api.Request) {
	if req.Headers.Get(api.HeaderAuthorization) != "" || hasRefreshHeader(req) {
		return
	}

	token := p.creds.AccessToken()
	if token == "" {
		cached, ok := p.tokens.AccessToken()
		if !ok {
			return
		}
		token = cached
		p.creds.SetAccessToken(ctx, token)
		logger.Log(ctx).Debug(ctx, LogTokenRehydrated)
	}

	req.Headers.Set(api.HeaderAuthorization, bearer(token))
}

func (p *Pipeline) terminate(ctx context.Context, logMsg string, env dto.Envelope, fallback string) {
	logger.Log(ctx).Warn(ctx, logMsg, zap.String("client_msg", env.ClientMsg))

	reason := fallback
	if env.HasMessage() {
		reason = env.ClientMsg
	}

	p.mu.RLock()
	t := p.terminator
	p.mu.RUnlock()

	if t != nil {
		t.ForceLogout(ctx, reason)
	}
}

// exchange выполняет сетевой обмен и декодирует конверт по мере
// возможности. Отсутствие конверта в теле не является ошибкой.
func (p *Pipeline) exchange(ctx context.Context, req *api.Request) (*api.Response, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrorEncodeBody, err)
		}
		body = bytes.NewReader(data)
	}

	u := p.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorBuildRequest, err)
	}

	for name, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorTransport, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorReadBody, err)
	}

	resp := &api.Response{StatusCode: httpResp.StatusCode, Body: data}
	_ = json.Unmarshal(data, &resp.Envelope)

	return resp, nil
}

func (p *Pipeline) ensureRequestID(ctx context.Context, req *api.Request) context.Context {
	id, ok := logger.GetRequestID(ctx)
	if !ok {
		id = logger.GenerateRequestID()
		ctx = logger.NewRequestIDContext(ctx, id)
	}
	if req.Headers.Get(api.HeaderRequestID) == "" {
		req.Headers.Set(api.HeaderRequestID, id)
	}
	return ctx
}

func bearer(token string) string {
	return "Bearer " + token
}

// hasRefreshHeader распознает запрос обновления токена по наличию
// заголовка refreshToken. Значение может быть пустым: вызов обновления
// без refresh-токена все равно является вызовом обновления, и его 403
// завершает сессию, а не запускает вложенное обновление.
func hasRefreshHeader(req *api.Request) bool {
	return len(req.Headers.Values(api.HeaderRefreshToken)) > 0
}
