package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/models"
	"github.com/wanjikuh/shop_admin/services"
)

type BundleHandler struct {
	Products services.ProductService
	Log      *logger.Logger
}

func NewBundleHandler(products services.ProductService, log *logger.Logger) *BundleHandler {
	return &BundleHandler{Products: products, Log: log}
}

type BundleItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

type BundleRequest struct {
	Name               string              `json:"name" validate:"required,max=255"`
	Description        *string             `json:"description"`
	DiscountPercentage decimal.Decimal     `json:"discount_percentage"`
	Products           []BundleItemRequest `json:"products" validate:"dive"`
}

var maxDiscount = decimal.NewFromInt(100)

func (r *BundleRequest) valid() (string, bool) {
	if r.DiscountPercentage.IsNegative() || r.DiscountPercentage.GreaterThan(maxDiscount) {
		return "Discount percentage must be between 0 and 100", false
	}
	return "", true
}

func (r *BundleRequest) toModel() (*models.ProductBundle, []models.BundleProduct) {
	bundle := &models.ProductBundle{
		Name:               r.Name,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
	}
	items := make([]models.BundleProduct, 0, len(r.Products))
	for _, p := range r.Products {
		items = append(items, models.BundleProduct{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	return bundle, items
}

func (h *BundleHandler) BundlesPage(c *fiber.Ctx) error {
	bundles, err := h.Products.GetAllBundles(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Render("bundles", fiber.Map{"Title": "Bundles", "Bundles": bundles})
}

func (h *BundleHandler) NewBundlePage(c *fiber.Ctx) error {
	products, err := h.Products.GetAllProducts(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Render("bundle_form", fiber.Map{"Title": "New Bundle", "Products": products})
}

func (h *BundleHandler) BundleDetailPage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bundle id"})
	}
	detail, err := h.Products.GetBundleDetail(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Render("bundle_detail", fiber.Map{
		"Title":    detail.Bundle.Name,
		"Bundle":   detail.Bundle,
		"Items":    detail.Items,
		"Subtotal": detail.Subtotal,
		"Total":    detail.Total,
	})
}

func (h *BundleHandler) ListBundles(c *fiber.Ctx) error {
	bundles, err := h.Products.GetAllBundles(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(bundles)
}

func (h *BundleHandler) GetBundle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bundle id"})
	}
	bundle, err := h.Products.GetBundle(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(bundle)
}

func (h *BundleHandler) GetBundleProducts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bundle id"})
	}
	items, err := h.Products.GetBundleProducts(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

func (h *BundleHandler) CreateBundle(c *fiber.Ctx) error {
	var req BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg, ok := req.valid(); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	bundle, items := req.toModel()
	created, err := h.Products.CreateBundle(c.Context(), bundle, items)
	if err != nil {
		h.Log.Error("failed to create bundle", "error", err)
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *BundleHandler) UpdateBundle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bundle id"})
	}

	var req BundleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg, ok := req.valid(); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	bundle, items := req.toModel()
	bundle.ID = id
	updated, err := h.Products.UpdateBundle(c.Context(), bundle, items)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(updated)
}

func (h *BundleHandler) DeleteBundle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid bundle id"})
	}
	if err := h.Products.DeleteBundle(c.Context(), id); err != nil {
		h.Log.Error("failed to delete bundle", "bundle_id", id, "error", err)
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
