// Package http содержит компоненты HTTP сервера платформы.
package http

import (
	"github.com/gofiber/fiber/v3"

	"startuphub/internal/mockapi/adapters/http/member"
	"startuphub/internal/mockapi/adapters/http/middleware"
	"startuphub/internal/mockapi/adapters/token"
	"startuphub/internal/mockapi/app/services"
	"startuphub/internal/mockapi/dto"
)

// SetupRouter настраивает маршрутизацию HTTP сервера.
func SetupRouter(app *fiber.App, auth *services.AuthService, members *services.MemberService, tokens *token.Service) {
	memberHandler := member.NewHandler(auth, members)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Публичные маршруты участников.
	memberRoutes := app.Group("/member")
	memberRoutes.Post("/login", memberHandler.Login)
	memberRoutes.Post("/refresh", memberHandler.RefreshTokens)
	memberRoutes.Post("/signup", memberHandler.SignUp)
	memberRoutes.Get("/checkUserId/:userId", memberHandler.CheckUserID)
	memberRoutes.Get("/checkUserEmail/:userEmail", memberHandler.CheckUserEmail)

	// Защищенные маршруты участников.
	protected := app.Group("/member", middleware.NewAuthMiddleware(tokens))
	protected.Put("/update", memberHandler.UpdateMember)
	protected.Post("/checkPw", memberHandler.CheckPassword)
	protected.Put("/updatePw", memberHandler.UpdatePassword)
	protected.Get("/:userId", memberHandler.GetMember)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Route not found.", dto.IconError))
	})
}
