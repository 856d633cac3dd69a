package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wanjikuh/shop_admin/handlers"
	"github.com/wanjikuh/shop_admin/middleware"
)

func ProductRoutes(app *fiber.App, h *handlers.ProductHandler, jwtSecret string) {
	app.Get("/products", h.ProductsPage)
	app.Get("/products/new", h.NewProductPage)
	app.Get("/products/:id", h.ProductDetailPage)
	app.Get("/products/:id/edit", h.EditProductPage)

	api := app.Group("/api/v1")
	api.Get("/products", h.ListProducts)
	api.Get("/products/:id", h.GetProduct)

	admin := api.Group("/products", middleware.Protected(jwtSecret), middleware.AdminRequired())
	admin.Post("", h.CreateProduct)
	admin.Put("/:id", h.UpdateProduct)
	admin.Delete("/:id", h.DeleteProduct)
}
