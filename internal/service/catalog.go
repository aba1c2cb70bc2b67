package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// SimilarProductsLimit is how many related products a detail page shows.
const SimilarProductsLimit = 4

var (
	// ErrInvalidPromotionType is returned for a promotion type other than top_deal or most_selling.
	ErrInvalidPromotionType = errors.New("invalid promotion type")
	// ErrNameRequired is returned when a catalog entity is saved without a name.
	ErrNameRequired = errors.New("name is required")
	// ErrCategoryNotFound is returned when a category or subcategory does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrPromotionNotFound is returned when a promotion does not exist.
	ErrPromotionNotFound = errors.New("promotion not found")
)

// CategoryTree is a category with its subcategories.
type CategoryTree struct {
	model.Category
	Subcategories []model.Subcategory
}

// HomePage is the storefront landing content.
type HomePage struct {
	Categories  []model.Category
	TopDeals    []model.Product
	MostSelling []model.Product
}

// ProductDetail is a product with related products from the same subcategory.
type ProductDetail struct {
	Product *model.Product
	Similar []model.Product
}

// CatalogService provides storefront reads and back-office writes over the catalog.
type CatalogService interface {
	Home(ctx context.Context) (*HomePage, error)
	Categories(ctx context.Context) ([]CategoryTree, error)
	ProductsBySubcategory(ctx context.Context, subcategoryID string) ([]model.Product, error)
	Featured(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	ProductDetail(ctx context.Context, id string) (*ProductDetail, error)

	ListProducts(ctx context.Context) ([]model.Product, error)
	SaveProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error
	SetProductActive(ctx context.Context, id string, active bool) error
	SetProductFeatured(ctx context.Context, id string, featured bool) error
	CreateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
	CreateSubcategory(ctx context.Context, s *model.Subcategory) error
	DeleteSubcategory(ctx context.Context, id string) error
	CreatePromotion(ctx context.Context, p *model.Promotion) error
	DeletePromotion(ctx context.Context, id string) error
}

// CatalogOption configures the catalog service.
type CatalogOption func(*CatalogServiceImpl)

// WithProductCache caches products by ID in front of the repository.
func WithProductCache(capacity int, ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if capacity <= 0 || ttl <= 0 {
			return
		}
		s.products = newTTLCache(cacheConfig[string, *model.Product]{
			Name:     "products",
			Capacity: capacity,
			TTL:      ttl,
		})
	}
}

// CatalogServiceImpl implements CatalogService.
type CatalogServiceImpl struct {
	productRepo   repository.ProductRepositoryInterface
	categoryRepo  repository.CategoryRepositoryInterface
	promotionRepo repository.PromotionRepositoryInterface
	products      *ttlCache[string, *model.Product]
}

// NewCatalogService creates a catalog service. Nil repositories make the
// corresponding operations return ErrRepositoryNotConfigured.
func NewCatalogService(
	productRepo repository.ProductRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
	promotionRepo repository.PromotionRepositoryInterface,
	opts ...CatalogOption,
) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		promotionRepo: promotionRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close stops the product cache sweeper.
func (s *CatalogServiceImpl) Close() {
	if s.products != nil {
		s.products.Stop()
	}
}

// Home returns active categories and the promoted product strips.
// Promotions pointing at missing or inactive products are skipped.
func (s *CatalogServiceImpl) Home(ctx context.Context) (*HomePage, error) {
	if s.categoryRepo == nil || s.promotionRepo == nil || s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	categories, err := s.categoryRepo.ListCategories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	topDeals, err := s.promotedProducts(ctx, model.PromotionTopDeal)
	if err != nil {
		return nil, err
	}
	mostSelling, err := s.promotedProducts(ctx, model.PromotionMostSelling)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Categories:  categories,
		TopDeals:    topDeals,
		MostSelling: mostSelling,
	}, nil
}

func (s *CatalogServiceImpl) promotedProducts(ctx context.Context, t model.PromotionType) ([]model.Product, error) {
	promotions, err := s.promotionRepo.ListActive(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("list %s promotions: %w", t, err)
	}

	products := make([]model.Product, 0, len(promotions))
	for _, promo := range promotions {
		p, err := s.Product(ctx, promo.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			log.Debug().
				Str("promotion_id", promo.ID).
				Str("product_id", promo.ProductID).
				Msg("Skipping promotion for unavailable product")
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// Categories returns active categories with their active subcategories.
func (s *CatalogServiceImpl) Categories(ctx context.Context) ([]CategoryTree, error) {
	if s.categoryRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	categories, err := s.categoryRepo.ListCategories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	subcategories, err := s.categoryRepo.ListSubcategories(ctx, "", true)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	byCategory := make(map[string][]model.Subcategory, len(categories))
	for _, sub := range subcategories {
		byCategory[sub.CategoryID] = append(byCategory[sub.CategoryID], sub)
	}

	trees := make([]CategoryTree, len(categories))
	for i, c := range categories {
		subs := byCategory[c.ID]
		if subs == nil {
			subs = []model.Subcategory{}
		}
		trees[i] = CategoryTree{Category: c, Subcategories: subs}
	}
	return trees, nil
}

// ProductsBySubcategory returns the active products of a subcategory, newest first.
func (s *CatalogServiceImpl) ProductsBySubcategory(ctx context.Context, subcategoryID string) ([]model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.productRepo.List(ctx, model.ProductFilter{
		SubcategoryID: subcategoryID,
		ActiveOnly:    true,
	})
}

// Featured returns active products carrying the featured badge.
func (s *CatalogServiceImpl) Featured(ctx context.Context) ([]model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.productRepo.List(ctx, model.ProductFilter{
		ActiveOnly:   true,
		FeaturedOnly: true,
	})
}

// Product returns an active product. Inactive and unknown products both yield ErrProductNotFound.
func (s *CatalogServiceImpl) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	if s.products != nil {
		if p, ok := s.products.Get(id); ok {
			return p, nil
		}
	}

	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if p == nil || !p.Active {
		return nil, ErrProductNotFound
	}

	if s.products != nil {
		s.products.Set(id, p)
	}
	return p, nil
}

// ProductDetail returns an active product and up to SimilarProductsLimit
// other active products from its subcategory. A product outside any subcategory has none.
func (s *CatalogServiceImpl) ProductDetail(ctx context.Context, id string) (*ProductDetail, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SubcategoryID == "" {
		return &ProductDetail{Product: p, Similar: []model.Product{}}, nil
	}

	similar, err := s.productRepo.List(ctx, model.ProductFilter{
		SubcategoryID: p.SubcategoryID,
		ExcludeID:     p.ID,
		ActiveOnly:    true,
		Limit:         SimilarProductsLimit,
	})
	if err != nil {
		// The detail page still renders without related products.
		log.Warn().Err(err).Str("product_id", id).Msg("Failed to load similar products")
		similar = []model.Product{}
	}

	return &ProductDetail{Product: p, Similar: similar}, nil
}

// ListProducts returns every product, active or not, newest first.
func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	if s.productRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.productRepo.List(ctx, model.ProductFilter{})
}

// SaveProduct creates a product when it has no ID and replaces it otherwise.
// Blank weight options and image URLs are dropped, as are flavors without a name.
// Flavors keep their ID across edits; new flavors get a fresh one.
func (s *CatalogServiceImpl) SaveProduct(ctx context.Context, p *model.Product) error {
	if s.productRepo == nil {
		return ErrRepositoryNotConfigured
	}

	normalizeProduct(p)
	if p.Name == "" {
		return ErrNameRequired
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if p.ID == "" {
		if err := s.productRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		log.Info().Str("product_id", p.ID).Str("name", p.Name).Msg("Product created")
		return nil
	}

	if err := s.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	s.invalidateProduct(p.ID)
	log.Info().Str("product_id", p.ID).Msg("Product updated")
	return nil
}

func normalizeProduct(p *model.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.WeightOptions = nonBlank(p.WeightOptions)
	p.ImageURLs = nonBlank(p.ImageURLs)

	flavors := make([]model.FlavorVariant, 0, len(p.Flavors))
	for _, f := range p.Flavors {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			continue
		}
		if f.ID == "" {
			f.ID = uuid.New().String()
		}
		f.ProductID = p.ID
		flavors = append(flavors, f)
	}
	p.Flavors = flavors
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// DeleteProduct removes a product.
func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	if s.productRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return mapNotFound(err, ErrProductNotFound)
	}
	s.invalidateProduct(id)
	log.Info().Str("product_id", id).Msg("Product deleted")
	return nil
}

// SetProductActive shows or hides a product on the storefront.
func (s *CatalogServiceImpl) SetProductActive(ctx context.Context, id string, active bool) error {
	if s.productRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.productRepo.SetActive(ctx, id, active); err != nil {
		return mapNotFound(err, ErrProductNotFound)
	}
	s.invalidateProduct(id)
	return nil
}

// SetProductFeatured toggles a product's featured badge.
func (s *CatalogServiceImpl) SetProductFeatured(ctx context.Context, id string, featured bool) error {
	if s.productRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.productRepo.SetFeatured(ctx, id, featured); err != nil {
		return mapNotFound(err, ErrProductNotFound)
	}
	s.invalidateProduct(id)
	return nil
}

// CreateCategory adds a category.
func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, c *model.Category) error {
	if s.categoryRepo == nil {
		return ErrRepositoryNotConfigured
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}
	return s.categoryRepo.CreateCategory(ctx, c)
}

// DeleteCategory removes a category.
func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if s.categoryRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return mapNotFound(s.categoryRepo.DeleteCategory(ctx, id), ErrCategoryNotFound)
}

// CreateSubcategory adds a subcategory.
func (s *CatalogServiceImpl) CreateSubcategory(ctx context.Context, sub *model.Subcategory) error {
	if s.categoryRepo == nil {
		return ErrRepositoryNotConfigured
	}
	sub.Name = strings.TrimSpace(sub.Name)
	if sub.Name == "" {
		return ErrNameRequired
	}
	return s.categoryRepo.CreateSubcategory(ctx, sub)
}

// DeleteSubcategory removes a subcategory.
func (s *CatalogServiceImpl) DeleteSubcategory(ctx context.Context, id string) error {
	if s.categoryRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return mapNotFound(s.categoryRepo.DeleteSubcategory(ctx, id), ErrCategoryNotFound)
}

// CreatePromotion pins a product into a storefront strip.
func (s *CatalogServiceImpl) CreatePromotion(ctx context.Context, p *model.Promotion) error {
	if s.promotionRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if !p.Type.Valid() {
		return ErrInvalidPromotionType
	}
	return s.promotionRepo.Create(ctx, p)
}

// DeletePromotion removes a promotion.
func (s *CatalogServiceImpl) DeletePromotion(ctx context.Context, id string) error {
	if s.promotionRepo == nil {
		return ErrRepositoryNotConfigured
	}
	return mapNotFound(s.promotionRepo.Delete(ctx, id), ErrPromotionNotFound)
}

func (s *CatalogServiceImpl) invalidateProduct(id string) {
	if s.products != nil {
		s.products.Invalidate(id)
	}
}

func mapNotFound(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}

var _ CatalogService = (*CatalogServiceImpl)(nil)
