package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/service"
)

// CatalogHandler serves the storefront's read-only catalog routes.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Home handles GET /api/home requests.
//
// @Summary      Storefront home
// @Description  Returns active categories plus the top deals and most selling product strips.
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.HomeView}
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/home [get]
func (h *CatalogHandler) Home(c *gin.Context) {
	builder := NewResponseBuilder(c)

	home, err := h.catalog.Home(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.HomeView{
		Categories:  home.Categories,
		TopDeals:    home.TopDeals,
		MostSelling: home.MostSelling,
	})
}

// Categories handles GET /api/categories requests.
//
// @Summary      List categories
// @Description  Returns active categories with their active subcategories, in display order.
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.CategoryTreeView}
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	builder := NewResponseBuilder(c)

	trees, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}

	views := make([]dto.CategoryTreeView, len(trees))
	for i, t := range trees {
		views[i] = dto.CategoryTreeView{Category: t.Category, Subcategories: t.Subcategories}
	}
	builder.SuccessOK(views)
}

// ProductsBySubcategory handles GET /api/subcategories/:id/products requests.
//
// @Summary      List products of a subcategory
// @Description  Returns the active products of a subcategory, newest first.
// @Tags         Storefront
// @Produce      json
// @Param        id path string true "Subcategory ID"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product}
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/subcategories/{id}/products [get]
func (h *CatalogHandler) ProductsBySubcategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.ProductsBySubcategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(products)
}

// Featured handles GET /api/products/featured requests.
//
// @Summary      Featured products
// @Tags         Storefront
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product}
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/featured [get]
func (h *CatalogHandler) Featured(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.Featured(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(products)
}

// ProductDetail handles GET /api/products/:id requests.
//
// @Summary      Product detail
// @Description  Returns an active product with its flavors and weight options, plus up to four similar products from the same subcategory.
// @Tags         Storefront
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ProductDetailView}
// @Failure      404 {object} dto.ErrorResponse "Product not found or inactive"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) ProductDetail(c *gin.Context) {
	builder := NewResponseBuilder(c)

	detail, err := h.catalog.ProductDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(dto.ProductDetailView{
		Product: *detail.Product,
		Similar: detail.Similar,
	})
}
