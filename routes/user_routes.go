package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjikuh/shop_admin/handlers"
	"github.com/wanjikuh/shop_admin/middleware"
)

func UserRoutes(app *fiber.App, h *handlers.UserHandler, jwtSecret string) {
	app.Get("/users", h.UsersPage)

	api := app.Group("/api/v1")
	api.Get("/users", middleware.Protected(jwtSecret), middleware.AdminRequired(), h.GetUsers)
}
