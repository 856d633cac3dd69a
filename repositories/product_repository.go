package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wanjikuh/shop_admin/apperrors"
	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/models"
)

// ProductRepository is the persistence gateway for products and bundles.
// Product operations are single statements; the bundle mutations each run
// inside one transaction so that the bundle row and its association rows
// change together or not at all.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	GetAllBundles(ctx context.Context) ([]models.ProductBundle, error)
	GetBundle(ctx context.Context, id uint) (*models.ProductBundle, error)
	CreateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error)
	UpdateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error)
	DeleteBundle(ctx context.Context, id uint) error
	GetBundleProducts(ctx context.Context, bundleID uint) ([]models.BundleItem, error)
}

type gormProductRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepository(db *gorm.DB, baseLog *logger.Logger) ProductRepository {
	return &gormProductRepository{db: db, log: baseLog.With("repo", "ProductRepository")}
}

func (r *gormProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, apperrors.Storage("list products", err)
	}
	return products, nil
}

func (r *gormProductRepository) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, apperrors.Storage("get product", err)
	}
	return &product, nil
}

func (r *gormProductRepository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, apperrors.Storage("create product", err)
	}
	return product, nil
}

func (r *gormProductRepository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
		})
	if res.Error != nil {
		return nil, apperrors.Storage("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product %d: %w", product.ID, apperrors.ErrNotFound)
	}
	return product, nil
}

// DeleteProduct is idempotent: deleting an absent id is not an error.
// Deleting a product that is still referenced by a bundle violates the
// restrict constraint on bundle_products and surfaces as a StorageError.
func (r *gormProductRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return apperrors.Storage("delete product", err)
	}
	return nil
}

func (r *gormProductRepository) GetAllBundles(ctx context.Context) ([]models.ProductBundle, error) {
	var bundles []models.ProductBundle
	if err := r.db.WithContext(ctx).Find(&bundles).Error; err != nil {
		return nil, apperrors.Storage("list bundles", err)
	}
	return bundles, nil
}

func (r *gormProductRepository) GetBundle(ctx context.Context, id uint) (*models.ProductBundle, error) {
	var bundle models.ProductBundle
	err := r.db.WithContext(ctx).First(&bundle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("bundle %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, apperrors.Storage("get bundle", err)
	}
	return &bundle, nil
}

// CreateBundle inserts the bundle row, then one association row per line
// item, all in one transaction. A duplicate product id in the input hits
// the composite primary key on bundle_products and aborts the whole
// insert; nothing persists.
func (r *gormProductRepository) CreateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bundle).Error; err != nil {
			return err
		}
		return insertBundleItems(tx, bundle.ID, items)
	})
	if err != nil {
		r.log.Error("create bundle failed", "error", err)
		return nil, apperrors.Storage("create bundle", err)
	}
	return bundle, nil
}

// UpdateBundle overwrites the bundle fields and replaces the association
// set wholesale: every existing row for the bundle is deleted and the new
// set inserted. No diffing; bundles are small and rarely written.
func (r *gormProductRepository) UpdateBundle(ctx context.Context, bundle *models.ProductBundle, items []models.BundleProduct) (*models.ProductBundle, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ProductBundle{}).Where("id = ?", bundle.ID).
			Updates(map[string]interface{}{
				"name":                bundle.Name,
				"description":         bundle.Description,
				"discount_percentage": bundle.DiscountPercentage,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("bundle %d: %w", bundle.ID, apperrors.ErrNotFound)
		}

		if err := tx.Where("bundle_id = ?", bundle.ID).Delete(&models.BundleProduct{}).Error; err != nil {
			return err
		}
		return insertBundleItems(tx, bundle.ID, items)
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		r.log.Error("update bundle failed", "bundle_id", bundle.ID, "error", err)
		return nil, apperrors.Storage("update bundle", err)
	}
	return bundle, nil
}

// DeleteBundle removes the association rows before the bundle row; the
// foreign key requires children to go first.
func (r *gormProductRepository) DeleteBundle(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bundle_id = ?", id).Delete(&models.BundleProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProductBundle{}, id).Error
	})
	if err != nil {
		r.log.Error("delete bundle failed", "bundle_id", id, "error", err)
		return apperrors.Storage("delete bundle", err)
	}
	return nil
}

type bundleItemRow struct {
	ID          uint
	Name        string
	Description *string
	Price       decimal.Decimal
	Quantity    int
}

// GetBundleProducts joins the association rows against the product table
// and returns one (product, quantity) pair per row, in storage order. An
// absent or empty bundle yields an empty slice, not an error.
func (r *gormProductRepository) GetBundleProducts(ctx context.Context, bundleID uint) ([]models.BundleItem, error) {
	var rows []bundleItemRow
	err := r.db.WithContext(ctx).
		Table("bundle_products").
		Select("products.id, products.name, products.description, products.price, bundle_products.quantity").
		Joins("JOIN products ON products.id = bundle_products.product_id").
		Where("bundle_products.bundle_id = ?", bundleID).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Storage("get bundle products", err)
	}

	items := make([]models.BundleItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.BundleItem{
			Product: models.Product{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Price:       row.Price,
			},
			Quantity: row.Quantity,
		})
	}
	return items, nil
}

func insertBundleItems(tx *gorm.DB, bundleID uint, items []models.BundleProduct) error {
	for _, item := range items {
		row := models.BundleProduct{
			BundleID:  bundleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
