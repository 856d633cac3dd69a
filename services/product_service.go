package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/wanjikuh/shop_admin/models"
	"github.com/wanjikuh/shop_admin/repositories"
)

// BundleDetail is the display-side view of a bundle: its line items plus
// the exact-decimal pricing derived from them.
type BundleDetail struct {
	Bundle   models.ProductBundle `json:"bundle"`
	Items    []models.BundleItem  `json:"items"`
	Subtotal decimal.Decimal      `json:"subtotal"`
	Total    decimal.Decimal      `json:"total"`
}

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	GetAllBundles(ctx context.Context) ([]models.ProductBundle, error)
	GetBundle(ctx context.Context, id uint) (*models.ProductBundle, error)
	GetBundleDetail(ctx context.Context, id uint) (*BundleDetail, error)
	CreateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error)
	UpdateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error)
	DeleteBundle(ctx context.Context, id uint) error
	GetBundleProducts(ctx context.Context, bundleID uint) ([]models.BundleItem, error)
}

type productService struct {
	products repositories.ProductRepository
}

func NewProductService(products repositories.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.GetAllProducts(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.products.GetProduct(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	return s.products.CreateProduct(ctx, product)
}

func (s *productService) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	return s.products.UpdateProduct(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	return s.products.DeleteProduct(ctx, id)
}

func (s *productService) GetAllBundles(ctx context.Context) ([]models.ProductBundle, error) {
	return s.products.GetAllBundles(ctx)
}

func (s *productService) GetBundle(ctx context.Context, id uint) (*models.ProductBundle, error) {
	return s.products.GetBundle(ctx, id)
}

// GetBundleDetail loads a bundle with its line items and computes the
// subtotal and the discounted total. All arithmetic is exact decimal;
// totals are rounded to cents only at the end.
func (s *productService) GetBundleDetail(ctx context.Context, id uint) (*BundleDetail, error) {
	bundle, err := s.products.GetBundle(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.products.GetBundleProducts(ctx, id)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	hundred := decimal.NewFromInt(100)
	factor := hundred.Sub(bundle.DiscountPercentage).Div(hundred)
	total := subtotal.Mul(factor).Round(2)

	return &BundleDetail{
		Bundle:   *bundle,
		Items:    items,
		Subtotal: subtotal.Round(2),
		Total:    total,
	}, nil
}

func (s *productService) CreateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error) {
	return s.products.CreateBundle(ctx, bundle, items)
}

func (s *productService) UpdateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error) {
	return s.products.UpdateBundle(ctx, bundle, items)
}

func (s *productService) DeleteBundle(ctx context.Context, id uint) error {
	return s.products.DeleteBundle(ctx, id)
}

func (s *productService) GetBundleProducts(ctx context.Context, bundleID uint) ([]models.BundleItem, error) {
	return s.products.GetBundleProducts(ctx, bundleID)
}
