package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/middleware"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup defines routes that require authentication.
type ProtectedRouteGroup interface {
	// RegisterProtectedRoutes registers protected routes to the given router group.
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// StorefrontRoutes registers the shopper-facing catalog and cart routes.
type StorefrontRoutes struct {
	catalog *CatalogHandler
	cart    *CartHandler
}

// NewStorefrontRoutes creates a new StorefrontRoutes instance.
func NewStorefrontRoutes(catalog *CatalogHandler, cart *CartHandler) *StorefrontRoutes {
	return &StorefrontRoutes{catalog: catalog, cart: cart}
}

// RegisterPublicRoutes registers the storefront routes.
func (r *StorefrontRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	if r.catalog != nil {
		rg.GET("/home", r.catalog.Home)
		rg.GET("/categories", r.catalog.Categories)
		rg.GET("/subcategories/:id/products", r.catalog.ProductsBySubcategory)
		rg.GET("/products/featured", r.catalog.Featured)
		rg.GET("/products/:id", r.catalog.ProductDetail)
	}

	if r.cart != nil {
		rg.POST("/products/:id/quote", r.cart.Quote)

		cart := rg.Group("/cart")
		cart.GET("", r.cart.GetCart)
		cart.DELETE("", r.cart.ClearCart)
		cart.POST("/lines", r.cart.AddLine)
		cart.PATCH("/lines/:lineId", r.cart.UpdateLine)
		cart.DELETE("/lines/:lineId", r.cart.RemoveLine)
	}
}

// AdminRoutes registers the back-office catalog routes.
type AdminRoutes struct {
	handler *AdminHandler
}

// NewAdminRoutes creates a new AdminRoutes instance.
func NewAdminRoutes(handler *AdminHandler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the admin routes, guarded by API keys when auth is enabled.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("/admin")
	if cfg.EnableAuth {
		admin.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	admin.GET("/products", r.handler.ListProducts)
	admin.POST("/products", r.handler.CreateProduct)
	admin.PUT("/products/:id", r.handler.UpdateProduct)
	admin.DELETE("/products/:id", r.handler.DeleteProduct)
	admin.PATCH("/products/:id/active", r.handler.SetProductActive)
	admin.PATCH("/products/:id/featured", r.handler.SetProductFeatured)

	admin.POST("/categories", r.handler.CreateCategory)
	admin.DELETE("/categories/:id", r.handler.DeleteCategory)
	admin.POST("/subcategories", r.handler.CreateSubcategory)
	admin.DELETE("/subcategories/:id", r.handler.DeleteSubcategory)
	admin.POST("/promotions", r.handler.CreatePromotion)
	admin.DELETE("/promotions/:id", r.handler.DeletePromotion)
}

var (
	_ PublicRouteGroup    = (*StorefrontRoutes)(nil)
	_ ProtectedRouteGroup = (*AdminRoutes)(nil)
)
