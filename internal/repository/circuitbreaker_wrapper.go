package repository

import (
	"context"
	"errors"

	"github.com/guttosm/bakery-service/internal/circuitbreaker"
	"github.com/guttosm/bakery-service/internal/domain/model"
)

// IsStoreFailure reports whether err indicates an unhealthy store.
// Missing documents and cancelled requests do not trip a breaker.
func IsStoreFailure(err error) bool {
	return !errors.Is(err, ErrNotFound) && !errors.Is(err, context.Canceled)
}

// guard runs fn through the breaker and returns its result.
func guard[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// ProductRepositoryWithCircuitBreaker wraps a product repository with circuit breaker protection.
type ProductRepositoryWithCircuitBreaker struct {
	repo           ProductRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductRepositoryWithCircuitBreaker(repo ProductRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// FindByID returns a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.Product, error) {
		return r.repo.FindByID(ctx, id)
	})
}

// List returns products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Product, error) {
		return r.repo.List(ctx, filter)
	})
}

// Create inserts a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Create(ctx context.Context, p *model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, p)
	})
}

// Update replaces a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Update(ctx context.Context, p *model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, p)
	})
}

// Delete removes a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// SetActive toggles visibility with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) SetActive(ctx context.Context, id string, active bool) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SetActive(ctx, id, active)
	})
}

// SetFeatured toggles the featured badge with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) SetFeatured(ctx context.Context, id string, featured bool) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.SetFeatured(ctx, id, featured)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CategoryRepositoryWithCircuitBreaker wraps a category repository with circuit breaker protection.
type CategoryRepositoryWithCircuitBreaker struct {
	repo           CategoryRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCategoryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCategoryRepositoryWithCircuitBreaker(repo CategoryRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CategoryRepositoryWithCircuitBreaker {
	return &CategoryRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// ListCategories returns categories with circuit breaker protection.
func (r *CategoryRepositoryWithCircuitBreaker) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Category, error) {
		return r.repo.ListCategories(ctx, activeOnly)
	})
}

// ListSubcategories returns subcategories with circuit breaker protection.
func (r *CategoryRepositoryWithCircuitBreaker) ListSubcategories(ctx context.Context, categoryID string, activeOnly bool) ([]model.Subcategory, error) {
	return guard(ctx, r.circuitBreaker, func() ([]model.Subcategory, error) {
		return r.repo.ListSubcategories(ctx, categoryID, activeOnly)
	})
}

// CreateCategory inserts a category with circuit breaker protection.
func (r *CategoryRepositoryWithCircuitBreaker) CreateCategory(ctx context.Context, c *model.Category) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateCategory(ctx, c)
	})
}

// CreateSubcategory inserts a subcategory with circuit breaker protection.
func (r *CategoryRepositoryWithCircuitBreaker) CreateSubcategory(ctx context.Context, s *model.Subcategory) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateSubcategory(ctx, s)
	})
}

// DeleteCategory removes a category with circuit breaker protection.
func (r *CategoryRepositoryWithCircuitBreaker) DeleteCategory(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DeleteCategory(ctx, id)
	})
}

// DeleteSubcategory removes a subcategory with circuit breaker protection.
func (r *CategoryRepositoryWithCircuitBreaker) DeleteSubcategory(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DeleteSubcategory(ctx, id)
	})
}

// PromotionRepositoryWithCircuitBreaker wraps a promotion repository with circuit breaker protection.
type PromotionRepositoryWithCircuitBreaker struct {
	repo           PromotionRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPromotionRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPromotionRepositoryWithCircuitBreaker(repo PromotionRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PromotionRepositoryWithCircuitBreaker {
	return &PromotionRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// ListActive returns promotions with circuit breaker protection.
// While the circuit is open it returns no promotions so the home page still renders.
func (r *PromotionRepositoryWithCircuitBreaker) ListActive(ctx context.Context, promotionType model.PromotionType) ([]model.Promotion, error) {
	result, err := guard(ctx, r.circuitBreaker, func() ([]model.Promotion, error) {
		return r.repo.ListActive(ctx, promotionType)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return []model.Promotion{}, nil
	}
	return result, err
}

// Create inserts a promotion with circuit breaker protection.
func (r *PromotionRepositoryWithCircuitBreaker) Create(ctx context.Context, p *model.Promotion) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, p)
	})
}

// Delete removes a promotion with circuit breaker protection.
func (r *PromotionRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// CartRepositoryWithCircuitBreaker wraps the cart snapshot repository with circuit breaker protection.
type CartRepositoryWithCircuitBreaker struct {
	repo           CartRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCartRepositoryWithCircuitBreaker(repo CartRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CartRepositoryWithCircuitBreaker {
	return &CartRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Load returns a snapshot with circuit breaker protection.
// An open circuit is returned as ErrCircuitOpen, not as a missing snapshot,
// so callers know a stored cart may still exist.
func (r *CartRepositoryWithCircuitBreaker) Load(ctx context.Context, sessionID string) (*model.CartSnapshot, error) {
	return guard(ctx, r.circuitBreaker, func() (*model.CartSnapshot, error) {
		return r.repo.Load(ctx, sessionID)
	})
}

// Save stores a snapshot with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) Save(ctx context.Context, snap model.CartSnapshot) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Save(ctx, snap)
	})
}

// Delete removes a snapshot with circuit breaker protection.
func (r *CartRepositoryWithCircuitBreaker) Delete(ctx context.Context, sessionID string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, sessionID)
	})
}

var (
	_ ProductRepositoryInterface   = (*ProductRepositoryWithCircuitBreaker)(nil)
	_ CategoryRepositoryInterface  = (*CategoryRepositoryWithCircuitBreaker)(nil)
	_ PromotionRepositoryInterface = (*PromotionRepositoryWithCircuitBreaker)(nil)
	_ CartRepositoryInterface      = (*CartRepositoryWithCircuitBreaker)(nil)
)
