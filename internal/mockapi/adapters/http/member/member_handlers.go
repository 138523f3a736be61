// Package member содержит HTTP обработчики операций с участниками.
package member

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"startuphub/internal/mockapi/adapters/token"
	"startuphub/internal/mockapi/app/services"
	"startuphub/internal/mockapi/domain"
	"startuphub/internal/mockapi/dto"
	"startuphub/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignUp   = "member handler: sign up"
	LogHandlerLogin    = "member handler: login"
	LogHandlerRefresh  = "member handler: refresh tokens" // #nosec G101 - not a credential
	LogHandlerGet      = "member handler: get member"
	LogHandlerUpdate   = "member handler: update member"
	LogHandlerCheckPw  = "member handler: check password"
	LogHandlerUpdatePw = "member handler: update password"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Тексты конверта для клиента.
const (
	MsgBadCredentials = "Incorrect ID or password."
	MsgWelcome        = "Welcome, %s!"
	MsgSignUpDone     = "Sign-up complete. Please log in."
	MsgMemberExists   = "This ID is already taken."
	MsgProfileUpdated = "Profile updated."
	MsgPasswordSaved  = "Password updated. Please log in again."
	MsgRefreshExpired = "Your session has expired. Please log in again."
	MsgRefreshInvalid = "Authentication failed. Please log in again."
)

// Вспомогательная функция для отправки конверта.
func sendEnvelope(ctx fiber.Ctx, statusCode int, env dto.Envelope) error {
	if err := ctx.Status(statusCode).JSON(env); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики участников.
type Handler struct {
	auth    *services.AuthService
	members *services.MemberService
}

// NewHandler создает обработчик участников.
func NewHandler(auth *services.AuthService, members *services.MemberService) *Handler {
	return &Handler{auth: auth, members: members}
}

// Login обрабатывает запрос входа. Отказ в учетных данных отвечает
// статусом 200 с конвертом ошибки: это прикладной отказ, а не сбой
// токена.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	if req.UserID == "" || req.UserPw == "" {
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	member, access, refresh, err := h.auth.Login(requestCtx, req.UserID, req.UserPw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return sendEnvelope(ctx, fiber.StatusOK, dto.Fail(MsgBadCredentials, dto.IconError))
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK(fmt.Sprintf(MsgWelcome, member.UserName), fiber.Map{
		"member":       member.Public(),
		"accessToken":  access,
		"refreshToken": refresh,
	}))
}

// RefreshTokens выпускает новый access-токен по заголовку refreshToken.
// Истекший refresh-токен дает 403, недействительный или неизвестный - 401.
// Успешный ответ несет только токен, без клиентского сообщения.
func (h *Handler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefresh)

	refreshToken := ctx.Get("refreshToken")
	if refreshToken == "" {
		return sendEnvelope(ctx, fiber.StatusUnauthorized, dto.Fail(MsgRefreshInvalid, dto.IconError))
	}

	access, err := h.auth.Refresh(requestCtx, refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			return sendEnvelope(ctx, fiber.StatusForbidden, dto.Fail(MsgRefreshExpired, dto.IconWarning))
		}
		log.Warn(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusUnauthorized, dto.Fail(MsgRefreshInvalid, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK("", access))
}

// SignUp регистрирует нового участника.
func (h *Handler) SignUp(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignUp)

	var req dto.SignUpRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	if req.UserID == "" || req.UserPw == "" || req.UserEmail == "" {
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	member := &domain.Member{
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserPhone: req.UserPhone,
		UserEmail: req.UserEmail,
		UserAddr:  req.UserAddr,
		UserLevel: 1,
	}

	if err := h.members.SignUp(requestCtx, member, req.UserPw); err != nil {
		if errors.Is(err, domain.ErrMemberAlreadyExists) {
			return sendEnvelope(ctx, fiber.StatusOK, dto.Fail(MsgMemberExists, dto.IconWarning))
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusCreated, dto.OK(MsgSignUpDone, nil))
}

// GetMember возвращает профиль участника.
func (h *Handler) GetMember(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	member, err := h.members.Get(requestCtx, ctx.Params("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return sendEnvelope(ctx, fiber.StatusNotFound, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK("", member.Public()))
}

// UpdateMember обновляет профиль участника.
func (h *Handler) UpdateMember(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	var req dto.UpdateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	member := &domain.Member{
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserPhone: req.UserPhone,
		UserEmail: req.UserEmail,
		UserAddr:  req.UserAddr,
	}

	if err := h.members.Update(requestCtx, member); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK(MsgProfileUpdated, nil))
}

// CheckUserID возвращает число участников с указанным идентификатором.
func (h *Handler) CheckUserID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	count, err := h.members.CountUserID(requestCtx, ctx.Params("userId"))
	if err != nil {
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK("", count))
}

// CheckUserEmail возвращает число участников с указанной почтой.
func (h *Handler) CheckUserEmail(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()

	count, err := h.members.CountUserEmail(requestCtx, ctx.Params("userEmail"))
	if err != nil {
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK("", count))
}

// CheckPassword сверяет текущий пароль участника.
func (h *Handler) CheckPassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCheckPw)

	var req dto.PasswordCheckRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	ok, err := h.members.CheckPassword(requestCtx, req.UserID, req.UserPw)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK("", ok))
}

// UpdatePassword меняет пароль участника.
func (h *Handler) UpdatePassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdatePw)

	var req dto.PasswordUpdateRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusBadRequest, dto.Fail(ErrorInvalidRequest, dto.IconError))
	}

	if err := h.members.UpdatePassword(requestCtx, req.UserID, req.NewUserPw); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendEnvelope(ctx, fiber.StatusInternalServerError, dto.Fail(ErrorFailedToServeRequest, dto.IconError))
	}

	return sendEnvelope(ctx, fiber.StatusOK, dto.OK(MsgPasswordSaved, nil))
}
