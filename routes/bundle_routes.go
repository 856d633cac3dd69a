package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjikuh/shop_admin/handlers"
	"github.com/wanjikuh/shop_admin/middleware"
)

func BundleRoutes(app *fiber.App, h *handlers.BundleHandler, jwtSecret string) {
	app.Get("/bundles", h.BundlesPage)
	app.Get("/bundles/new", h.NewBundlePage)
	app.Get("/bundles/:id", h.BundleDetailPage)

	api := app.Group("/api/v1")
	api.Get("/bundles", h.ListBundles)
	api.Get("/bundles/:id", h.GetBundle)
	api.Get("/bundles/:id/products", h.GetBundleProducts)

	admin := api.Group("/bundles", middleware.Protected(jwtSecret), middleware.AdminRequired())
	admin.Post("", h.CreateBundle)
	admin.Put("/:id", h.UpdateBundle)
	admin.Delete("/:id", h.DeleteBundle)
}
