package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjikuh/shop_admin/apperrors"
	"github.com/wanjikuh/shop_admin/models"
)

type fakeProductRepo struct {
	bundles map[uint]*models.ProductBundle
	items   map[uint][]models.BundleItem
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		bundles: make(map[uint]*models.ProductBundle),
		items:   make(map[uint][]models.BundleItem),
	}
}

func (f *fakeProductRepo) GetAllProducts(context.Context) ([]models.Product, error) { return nil, nil }
func (f *fakeProductRepo) GetProduct(context.Context, uint) (*models.Product, error) {
	return nil, apperrors.ErrNotFound
}
func (f *fakeProductRepo) CreateProduct(_ context.Context, p *models.Product) (*models.Product, error) {
	return p, nil
}
func (f *fakeProductRepo) UpdateProduct(_ context.Context, p *models.Product) (*models.Product, error) {
	return p, nil
}
func (f *fakeProductRepo) DeleteProduct(context.Context, uint) error { return nil }
func (f *fakeProductRepo) GetAllBundles(context.Context) ([]models.ProductBundle, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetBundle(_ context.Context, id uint) (*models.ProductBundle, error) {
	bundle, ok := f.bundles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return bundle, nil
}

func (f *fakeProductRepo) CreateBundle(_ context.Context, b *models.ProductBundle, _ []models.BundleProduct) (*models.ProductBundle, error) {
	return b, nil
}

func (f *fakeProductRepo) UpdateBundle(_ context.Context, b *models.ProductBundle, _ []models.BundleProduct) (*models.ProductBundle, error) {
	return b, nil
}

func (f *fakeProductRepo) DeleteBundle(context.Context, uint) error { return nil }

func (f *fakeProductRepo) GetBundleProducts(_ context.Context, id uint) ([]models.BundleItem, error) {
	return f.items[id], nil
}

func TestGetBundleDetail_ComputesExactDiscountedTotal(t *testing.T) {
	repo := newFakeProductRepo()
	repo.bundles[7] = &models.ProductBundle{
		ID:                 7,
		Name:               "Starter Pack",
		DiscountPercentage: decimal.NewFromInt(10),
	}
	repo.items[7] = []models.BundleItem{
		{Product: models.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99")}, Quantity: 2},
		{Product: models.Product{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("5.00")}, Quantity: 1},
	}
	svc := NewProductService(repo)

	detail, err := svc.GetBundleDetail(context.Background(), 7)
	require.NoError(t, err)

	// 9.99*2 + 5.00 = 24.98; 10% off = 22.482, rounded to cents.
	assert.True(t, detail.Subtotal.Equal(decimal.RequireFromString("24.98")),
		"subtotal was %s", detail.Subtotal)
	assert.True(t, detail.Total.Equal(decimal.RequireFromString("22.48")),
		"total was %s", detail.Total)
	assert.Len(t, detail.Items, 2)
}

func TestGetBundleDetail_ZeroDiscountKeepsSubtotal(t *testing.T) {
	repo := newFakeProductRepo()
	repo.bundles[1] = &models.ProductBundle{ID: 1, Name: "Plain", DiscountPercentage: decimal.Zero}
	repo.items[1] = []models.BundleItem{
		{Product: models.Product{ID: 1, Price: decimal.RequireFromString("0.10")}, Quantity: 3},
	}
	svc := NewProductService(repo)

	detail, err := svc.GetBundleDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, detail.Total.Equal(decimal.RequireFromString("0.30")),
		"total was %s", detail.Total)
}

func TestGetBundleDetail_EmptyBundle(t *testing.T) {
	repo := newFakeProductRepo()
	repo.bundles[2] = &models.ProductBundle{ID: 2, Name: "Empty", DiscountPercentage: decimal.NewFromInt(50)}
	svc := NewProductService(repo)

	detail, err := svc.GetBundleDetail(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, detail.Items)
	assert.True(t, detail.Total.IsZero())
}

func TestGetBundleDetail_NotFoundPropagates(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.GetBundleDetail(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
