package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/models"
	"github.com/wanjikuh/shop_admin/services"
)

type ProductHandler struct {
	Products services.ProductService
	Log      *logger.Logger
}

func NewProductHandler(products services.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{Products: products, Log: log}
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (r *ProductRequest) toModel() *models.Product {
	return &models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

func (h *ProductHandler) ProductsPage(c *fiber.Ctx) error {
	products, err := h.Products.GetAllProducts(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Render("products", fiber.Map{"Title": "Products", "Products": products})
}

func (h *ProductHandler) NewProductPage(c *fiber.Ctx) error {
	return c.Render("product_form", fiber.Map{"Title": "New Product"})
}

func (h *ProductHandler) ProductDetailPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	product, err := h.Products.GetProduct(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Render("product_detail", fiber.Map{"Title": product.Name, "Product": product})
}

func (h *ProductHandler) EditProductPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	product, err := h.Products.GetProduct(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Render("product_form", fiber.Map{"Title": "Edit Product", "Product": product})
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.Products.GetAllProducts(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	product, err := h.Products.GetProduct(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must not be negative"})
	}

	product, err := h.Products.CreateProduct(c.Context(), req.toModel())
	if err != nil {
		h.Log.Error("failed to create product", "error", err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Price.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price must not be negative"})
	}

	product := req.toModel()
	product.ID = id
	updated, err := h.Products.UpdateProduct(c.Context(), product)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(updated)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if err := h.Products.DeleteProduct(c.Context(), id); err != nil {
		h.Log.Error("failed to delete product", "product_id", id, "error", err)
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
