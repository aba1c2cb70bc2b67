package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/service"
)

// AdminHandler serves the back-office catalog routes.
type AdminHandler struct {
	catalog service.CatalogService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(catalog service.CatalogService) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

// ListProducts handles GET /api/admin/products requests.
//
// @Summary      List all products
// @Description  Returns every product, including inactive ones, newest first.
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Product}
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Security     ApiKeyAuth
// @Router       /api/admin/products [get]
func (h *AdminHandler) ListProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(products)
}

// CreateProduct handles POST /api/admin/products requests.
//
// @Summary      Create a product
// @Description  Blank weight options and image URLs are dropped, as are flavors without a name.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        request body dto.ProductRequest true "Product"
// @Success      201 {object} dto.SuccessResponse{data=model.Product}
// @Failure      400 {object} dto.ErrorResponse "Invalid product"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/admin/products [post]
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ProductRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	product := req.ToModel("")
	if err := h.catalog.SaveProduct(c.Request.Context(), product); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessCreated(product)
}

// UpdateProduct handles PUT /api/admin/products/:id requests.
//
// @Summary      Replace a product
// @Description  Replaces the product and its flavor list. Flavors sent with an id keep it.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Product ID"
// @Param        request body dto.ProductRequest true "Product"
// @Success      200 {object} dto.SuccessResponse{data=model.Product}
// @Failure      400 {object} dto.ErrorResponse "Invalid product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ProductRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	product := req.ToModel(c.Param("id"))
	if err := h.catalog.SaveProduct(c.Request.Context(), product); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(product)
}

// DeleteProduct handles DELETE /api/admin/products/:id requests.
//
// @Summary      Delete a product
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	h.deleteByID(c, h.catalog.DeleteProduct)
}

// SetProductActive handles PATCH /api/admin/products/:id/active requests.
//
// @Summary      Show or hide a product
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Product ID"
// @Param        request body dto.ToggleRequest true "Active flag"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/products/{id}/active [patch]
func (h *AdminHandler) SetProductActive(c *gin.Context) {
	h.toggle(c, "active", h.catalog.SetProductActive)
}

// SetProductFeatured handles PATCH /api/admin/products/:id/featured requests.
//
// @Summary      Toggle the featured badge
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Product ID"
// @Param        request body dto.ToggleRequest true "Featured flag"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/products/{id}/featured [patch]
func (h *AdminHandler) SetProductFeatured(c *gin.Context) {
	h.toggle(c, "featured", h.catalog.SetProductFeatured)
}

// CreateCategory handles POST /api/admin/categories requests.
//
// @Summary      Create a category
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        request body dto.CategoryRequest true "Category"
// @Success      201 {object} dto.SuccessResponse{data=model.Category}
// @Failure      400 {object} dto.ErrorResponse "Invalid category"
// @Security     ApiKeyAuth
// @Router       /api/admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CategoryRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	category := req.ToModel()
	if err := h.catalog.CreateCategory(c.Request.Context(), category); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessCreated(category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id requests.
//
// @Summary      Delete a category
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Category ID"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Category not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	h.deleteByID(c, h.catalog.DeleteCategory)
}

// CreateSubcategory handles POST /api/admin/subcategories requests.
//
// @Summary      Create a subcategory
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        request body dto.SubcategoryRequest true "Subcategory"
// @Success      201 {object} dto.SuccessResponse{data=model.Subcategory}
// @Failure      400 {object} dto.ErrorResponse "Invalid subcategory"
// @Security     ApiKeyAuth
// @Router       /api/admin/subcategories [post]
func (h *AdminHandler) CreateSubcategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SubcategoryRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	sub := req.ToModel()
	if err := h.catalog.CreateSubcategory(c.Request.Context(), sub); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessCreated(sub)
}

// DeleteSubcategory handles DELETE /api/admin/subcategories/:id requests.
//
// @Summary      Delete a subcategory
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Subcategory ID"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Subcategory not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/subcategories/{id} [delete]
func (h *AdminHandler) DeleteSubcategory(c *gin.Context) {
	h.deleteByID(c, h.catalog.DeleteSubcategory)
}

// CreatePromotion handles POST /api/admin/promotions requests.
//
// @Summary      Promote a product
// @Description  Pins a product into the top_deal or most_selling strip of the home page.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        request body dto.PromotionRequest true "Promotion"
// @Success      201 {object} dto.SuccessResponse{data=model.Promotion}
// @Failure      400 {object} dto.ErrorResponse "Invalid promotion type"
// @Security     ApiKeyAuth
// @Router       /api/admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PromotionRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	promotion := req.ToModel()
	if err := h.catalog.CreatePromotion(c.Request.Context(), promotion); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessCreated(promotion)
}

// DeletePromotion handles DELETE /api/admin/promotions/:id requests.
//
// @Summary      Delete a promotion
// @Tags         Admin
// @Produce      json
// @Param        X-API-Key header string true "Back-office API key"
// @Param        id path string true "Promotion ID"
// @Success      200 {object} dto.SuccessResponse
// @Failure      404 {object} dto.ErrorResponse "Promotion not found"
// @Security     ApiKeyAuth
// @Router       /api/admin/promotions/{id} [delete]
func (h *AdminHandler) DeletePromotion(c *gin.Context) {
	h.deleteByID(c, h.catalog.DeletePromotion)
}

func (h *AdminHandler) deleteByID(c *gin.Context, del func(ctx context.Context, id string) error) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := del(c.Request.Context(), id); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(gin.H{"id": id, "deleted": true})
}

func (h *AdminHandler) toggle(c *gin.Context, field string, set func(ctx context.Context, id string, value bool) error) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ToggleRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	id := c.Param("id")
	if err := set(c.Request.Context(), id, *req.Value); err != nil {
		builder.Fail(err)
		return
	}
	builder.SuccessOK(gin.H{"id": id, field: *req.Value})
}
