package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"startuphub/internal/client/app/dto"
	"startuphub/internal/client/ports/api"
	"startuphub/internal/client/ports/ui"
	"startuphub/pkg/logger"
)

// Сообщения журнала контроллера сессии.
const (
	LogControllerLogin       = "logging in"
	LogControllerLoginOK     = "login succeeded"
	LogControllerLoginFailed = "login failed"
	LogControllerLogout      = "logging out"
	LogControllerForced      = "session terminated"
	LogControllerForcedSkip  = "forced logout on unauthenticated session"
)

// Сообщения об ошибках контроллера сессии.
const (
	ErrorLoginCall     = "login request failed"
	ErrorLoginRejected = "login rejected"
	ErrorLoginDecode   = "failed to decode login payload"
	ErrorLoginPersist  = "failed to persist credentials"
)

// Маршруты переходов контроллера.
const (
	routeHome  = "/home"
	routeLogin = "/login"
)

const loginPath = "/member/login"

// Controller управляет жизненным циклом сессии: входом, выходом и
// принудительным завершением из конвейера запросов.
type Controller struct {
	store     *Store
	client    api.Client
	notifier  ui.Notifier
	navigator ui.Navigator

	// forceMu сериализует принудительные завершения: параллельные
	// запросы с истекшей сессией дают одно уведомление и один переход.
	forceMu sync.Mutex
}

// NewController создает контроллер жизненного цикла сессии.
func NewController(store *Store, client api.Client, notifier ui.Notifier, navigator ui.Navigator) *Controller {
	return &Controller{
		store:     store,
		client:    client,
		notifier:  notifier,
		navigator: navigator,
	}
}

// Login выполняет вход. При успехе учетные данные сохраняются одним
// переходом и выполняется переход на домашнюю поверхность. Уведомление
// из конверта показывает конвейер, контроллер его не дублирует.
func (c *Controller) Login(ctx context.Context, userID, userPw string) error {
	logger.Log(ctx).Info(ctx, LogControllerLogin, zap.String("user_id", userID))

	req := api.NewRequest(http.MethodPost, loginPath)
	req.Body = &dto.LoginRequest{UserID: userID, UserPw: userPw}

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		logger.Log(ctx).Warn(ctx, LogControllerLoginFailed, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorLoginCall, err)
	}

	// Отказ в учетных данных приходит со статусом 200 и конвертом,
	// не помеченным успешным. Уведомление уже показано конвейером,
	// хранилище не трогаем независимо от содержимого resData.
	if !resp.Envelope.IsSuccess() || !resp.Envelope.HasData() {
		logger.Log(ctx).Warn(ctx, LogControllerLoginFailed, zap.String("client_msg", resp.Envelope.ClientMsg))
		return fmt.Errorf("%s: %s", ErrorLoginRejected, resp.Envelope.ClientMsg)
	}

	var result dto.LoginResult
	if err := resp.Envelope.DecodeResData(&result); err != nil {
		return fmt.Errorf("%s: %w", ErrorLoginDecode, err)
	}
	if result.Member == nil || result.AccessToken == "" || result.RefreshToken == "" {
		return fmt.Errorf("%s: incomplete login payload", ErrorLoginDecode)
	}

	if err := c.store.SetAuth(ctx, result.Member, result.AccessToken, result.RefreshToken); err != nil {
		return fmt.Errorf("%s: %w", ErrorLoginPersist, err)
	}

	logger.Log(ctx).Info(ctx, LogControllerLoginOK, zap.String("user_id", userID))

	c.navigator.Navigate(ctx, routeHome)

	return nil
}

// Logout выполняет добровольный выход: сброс учетных данных и обычный
// переход на поверхность входа.
func (c *Controller) Logout(ctx context.Context) {
	logger.Log(ctx).Info(ctx, LogControllerLogout)

	c.store.Clear(ctx)
	c.navigator.Navigate(ctx, routeLogin)
}

// ForceLogout принудительно завершает сессию из невосстановимой ветки
// конвейера. Повторные вызовы на уже завершенной сессии не дают ни
// уведомления, ни перехода.
func (c *Controller) ForceLogout(ctx context.Context, reason string) {
	c.forceMu.Lock()
	defer c.forceMu.Unlock()

	if !c.store.Clear(ctx) {
		logger.Log(ctx).Debug(ctx, LogControllerForcedSkip)
		return
	}

	logger.Log(ctx).Warn(ctx, LogControllerForced, zap.String("reason", reason))

	c.notifier.Notify(ctx, reason, dto.IconWarning)
	c.navigator.HardNavigate(ctx, routeLogin)
}

// Restore восстанавливает сессию из долговременных хранилищ при
// запуске приложения.
func (c *Controller) Restore(ctx context.Context) error {
	return c.store.Hydrate(ctx)
}
