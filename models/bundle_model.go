package models

import (
	"github.com/shopspring/decimal"
)

type ProductBundle struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Name               string          `gorm:"size:255;not null" json:"name"`
	Description        *string         `gorm:"type:text" json:"description"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_percentage"`
}

func (ProductBundle) TableName() string {
	return "product_bundles"
}

// BundleProduct links a bundle to one of its products. A (bundle, product)
// pair appears at most once; the quantity rides on the link itself.
// Association rows are removed with their bundle, while a product that is
// still referenced by a bundle cannot be deleted.
type BundleProduct struct {
	BundleID  uint `gorm:"primaryKey;autoIncrement:false" json:"bundle_id"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	Bundle  ProductBundle `gorm:"foreignKey:BundleID;constraint:OnDelete:CASCADE" json:"-"`
	Product Product       `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (BundleProduct) TableName() string {
	return "bundle_products"
}

// BundleItem pairs a product with its per-bundle quantity, as returned by
// the line-item join.
type BundleItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
