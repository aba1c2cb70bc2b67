// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/bakery-service/internal/domain/model"
)

// ProductRepositoryInterface defines product catalog persistence.
type ProductRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	SetFeatured(ctx context.Context, id string, featured bool) error
}

// CategoryRepositoryInterface defines category and subcategory persistence.
type CategoryRepositoryInterface interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error)
	ListSubcategories(ctx context.Context, categoryID string, activeOnly bool) ([]model.Subcategory, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	CreateSubcategory(ctx context.Context, s *model.Subcategory) error
	DeleteCategory(ctx context.Context, id string) error
	DeleteSubcategory(ctx context.Context, id string) error
}

// PromotionRepositoryInterface defines promotion persistence.
type PromotionRepositoryInterface interface {
	ListActive(ctx context.Context, promotionType model.PromotionType) ([]model.Promotion, error)
	Create(ctx context.Context, p *model.Promotion) error
	Delete(ctx context.Context, id string) error
}

// CartRepositoryInterface defines cart snapshot persistence.
type CartRepositoryInterface interface {
	Load(ctx context.Context, sessionID string) (*model.CartSnapshot, error)
	Save(ctx context.Context, snapshot model.CartSnapshot) error
	Delete(ctx context.Context, sessionID string) error
}

var (
	_ ProductRepositoryInterface   = (*ProductRepository)(nil)
	_ CategoryRepositoryInterface  = (*CategoryRepository)(nil)
	_ PromotionRepositoryInterface = (*PromotionRepository)(nil)
	_ CartRepositoryInterface      = (*CartRepository)(nil)
)
