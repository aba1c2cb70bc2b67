package http

import (
	"context"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/service"
	"github.com/stretchr/testify/mock"
)

// mockCatalog is a testify mock of service.CatalogService.
type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Home(ctx context.Context) (*service.HomePage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HomePage), args.Error(1)
}

func (m *mockCatalog) Categories(ctx context.Context) ([]service.CategoryTree, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CategoryTree), args.Error(1)
}

func (m *mockCatalog) ProductsBySubcategory(ctx context.Context, subcategoryID string) ([]model.Product, error) {
	args := m.Called(ctx, subcategoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockCatalog) Featured(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockCatalog) Product(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockCatalog) ProductDetail(ctx context.Context, id string) (*service.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductDetail), args.Error(1)
}

func (m *mockCatalog) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockCatalog) SaveProduct(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockCatalog) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalog) SetProductActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *mockCatalog) SetProductFeatured(ctx context.Context, id string, featured bool) error {
	return m.Called(ctx, id, featured).Error(0)
}

func (m *mockCatalog) CreateCategory(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCatalog) DeleteCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalog) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockCatalog) DeleteSubcategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalog) CreatePromotion(ctx context.Context, p *model.Promotion) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockCatalog) DeletePromotion(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ service.CatalogService = (*mockCatalog)(nil)
