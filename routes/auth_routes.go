package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjikuh/shop_admin/handlers"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	app.Get("/register", h.RegisterPage)
	app.Get("/login", h.LoginPage)

	api := app.Group("/api/v1")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)
	api.Get("/oauth/login", h.OAuthLogin)
	api.Get("/oauth/callback", h.OAuthCallback)
	api.Get("/siwe/nonce", h.SiweNonce)
	api.Post("/siwe/login", h.SiweLogin)
}
