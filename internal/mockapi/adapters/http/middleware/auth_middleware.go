package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"startuphub/internal/mockapi/adapters/token"
	"startuphub/internal/mockapi/dto"
	"startuphub/pkg/logger"
)

// LocalUserID - ключ Locals с идентификатором аутентифицированного
// участника.
const LocalUserID = "userId"

// Константы сообщений промежуточного ПО аутентификации.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"

	// Тексты конверта для клиента.
	MsgTokenExpired  = "Your session has expired. Please log in again."
	MsgTokenInvalid  = "Authentication failed. Please log in again."
	MsgTokenRequired = "Authentication required."
)

// NewAuthMiddleware создает промежуточное ПО проверки access-токена.
// Истекший токен дает 403, недействительный или отсутствующий - 401.
func NewAuthMiddleware(tokens *token.Service) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail(MsgTokenRequired, dto.IconWarning))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail(MsgTokenInvalid, dto.IconError))
		}

		userID, err := tokens.Validate(requestCtx, strings.TrimPrefix(authHeader, "Bearer "), token.TypeAccess)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				return ctx.Status(fiber.StatusForbidden).
					JSON(dto.Fail(MsgTokenExpired, dto.IconWarning))
			}
			return ctx.Status(fiber.StatusUnauthorized).
				JSON(dto.Fail(MsgTokenInvalid, dto.IconError))
		}

		ctx.Locals(LocalUserID, userID)

		return ctx.Next()
	}
}
