package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/logger"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/guttosm/bakery-service/internal/middleware"
	"github.com/guttosm/bakery-service/internal/service"
)

// ProductFinder looks up an active product for pricing.
type ProductFinder interface {
	Product(ctx context.Context, id string) (*model.Product, error)
}

// CartHandler serves the quote and cart routes.
// The cart session travels in the X-Cart-Session header and is issued on the first add.
type CartHandler struct {
	products ProductFinder
	carts    *service.CartStore
	currency string
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(products ProductFinder, carts *service.CartStore, currency string) *CartHandler {
	return &CartHandler{
		products: products,
		carts:    carts,
		currency: currency,
	}
}

// Quote handles POST /api/products/:id/quote requests.
//
// @Summary      Price a configuration
// @Description  Resolves a flavor, weight, and quantity against a product and returns the unit price and subtotal without touching the cart. Omitted choices default to the product's first flavor and first weight option.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body dto.QuoteRequest true "Selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteView}
// @Failure      400 {object} dto.ErrorResponse "invalid_quantity, unavailable_flavor or invalid_weight_option"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/products/{id}/quote [post]
func (h *CartHandler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		builder.BindFailed(err)
		return
	}

	product, err := h.products.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Fail(err)
		return
	}

	cfg, unitPrice, err := service.Resolve(product, req.Selection())
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.NewQuoteView(cfg, unitPrice, h.currency))
}

// GetCart handles GET /api/cart requests.
//
// @Summary      View the cart
// @Description  Returns the session's cart lines in insertion order with per-line subtotals and the grand total. An unknown or missing session yields an empty cart.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView}
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := middleware.GetCartSessionID(c)
	cart, ok := h.carts.Get(c.Request.Context(), sessionID)
	if !ok {
		builder.SuccessOK(h.emptyView(sessionID))
		return
	}

	builder.SuccessOK(dto.NewCartView(cart.Snapshot(), h.currency))
}

// AddLine handles POST /api/cart/lines requests.
//
// @Summary      Add to cart
// @Description  Resolves the selection and appends a new line. Identical configurations are never merged; send an Idempotency-Key to make retries safe. The response carries the session in X-Cart-Session.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session; issued when absent"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddCartLineRequest true "Configured product"
// @Success      201 {object} dto.SuccessResponse{data=dto.CartView}
// @Failure      400 {object} dto.ErrorResponse "invalid_quantity, unavailable_flavor or invalid_weight_option"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      409 {object} dto.ErrorResponse "Cart is full"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	const op = "add"
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddCartLineRequest](c)
	if err != nil {
		metrics.RecordCartOperation(op, "rejected")
		builder.BindFailed(err)
		return
	}

	ctx := c.Request.Context()
	product, err := h.products.Product(ctx, req.ProductID)
	if err != nil {
		h.reject(builder, op, err)
		return
	}

	cfg, _, err := service.Resolve(product, req.Selection())
	if err != nil {
		h.reject(builder, op, err)
		return
	}

	cart := h.carts.GetOrCreate(ctx, middleware.GetCartSessionID(c))
	middleware.SetCartSessionID(c, cart.SessionID())

	line, err := cart.AddLine(cfg)
	if err != nil {
		builder.Fail(err)
		return
	}

	l := logger.ForRequest(middleware.GetRequestID(c), cart.SessionID())
	l.Info().
		Str("line_id", line.ID).
		Str("product_id", product.ID).
		Str("flavor_id", cfg.FlavorID()).
		Str("weight", cfg.Weight).
		Int("quantity", cfg.Quantity).
		Msg("Cart line added")

	builder.SuccessCreated(dto.NewCartView(h.persist(c, cart), h.currency))
}

// UpdateLine handles PATCH /api/cart/lines/:lineId requests.
//
// @Summary      Change a line's quantity
// @Description  Sets a new positive quantity and recomputes the subtotal and total. A rejected quantity leaves the line unchanged.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string true "Cart session"
// @Param        lineId path string true "Cart line ID"
// @Param        request body dto.UpdateCartLineRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView}
// @Failure      400 {object} dto.ErrorResponse "invalid_quantity"
// @Failure      404 {object} dto.ErrorResponse "Line not found"
// @Router       /api/cart/lines/{lineId} [patch]
func (h *CartHandler) UpdateLine(c *gin.Context) {
	const op = "update"
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateCartLineRequest](c)
	if err != nil {
		metrics.RecordCartOperation(op, "rejected")
		builder.BindFailed(err)
		return
	}

	cart, ok := h.carts.Get(c.Request.Context(), middleware.GetCartSessionID(c))
	if !ok {
		metrics.RecordCartOperation(op, "not_found")
		builder.Fail(service.ErrLineNotFound)
		return
	}

	if _, err := cart.UpdateQuantity(c.Param("lineId"), req.Quantity); err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.NewCartView(h.persist(c, cart), h.currency))
}

// RemoveLine handles DELETE /api/cart/lines/:lineId requests.
//
// @Summary      Remove a line
// @Description  Removes a line from the cart. Removing an unknown line is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string true "Cart session"
// @Param        lineId path string true "Cart line ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView}
// @Router       /api/cart/lines/{lineId} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := middleware.GetCartSessionID(c)
	cart, ok := h.carts.Get(c.Request.Context(), sessionID)
	if !ok {
		metrics.RecordCartOperation("remove", "noop")
		builder.SuccessOK(h.emptyView(sessionID))
		return
	}

	cart.RemoveLine(c.Param("lineId"))

	builder.SuccessOK(dto.NewCartView(h.persist(c, cart), h.currency))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear the cart
// @Description  Destroys the session's cart, in memory and in the snapshot store.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string true "Cart session"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartView}
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := middleware.GetCartSessionID(c)
	if cart, ok := h.carts.Get(c.Request.Context(), sessionID); ok {
		cart.Clear()
	} else {
		metrics.RecordCartOperation("clear", "noop")
	}
	if sessionID != "" {
		if err := h.carts.Drop(c.Request.Context(), sessionID); err != nil {
			l := logger.ForRequest(middleware.GetRequestID(c), sessionID)
			l.Warn().Err(err).Msg("Failed to delete cart snapshot")
		}
	}

	builder.SuccessOK(h.emptyView(sessionID))
}

// persist stores the cart's snapshot and returns it for rendering.
// A store failure is logged but does not fail the request; the in-memory cart stays authoritative.
func (h *CartHandler) persist(c *gin.Context, cart *service.Cart) model.CartSnapshot {
	snap := cart.Snapshot()
	if err := h.carts.Persist(c.Request.Context(), cart); err != nil {
		l := logger.ForRequest(middleware.GetRequestID(c), cart.SessionID())
		l.Warn().Err(err).Int64("version", snap.Version).Msg("Failed to persist cart snapshot")
	}
	return snap
}

// reject counts a mutation that failed before reaching the cart and writes the error.
// Outcomes decided by the cart itself are counted there.
func (h *CartHandler) reject(builder *ResponseBuilder, op string, err error) {
	result := "error"
	if e := classify(err); e.status < http.StatusInternalServerError {
		result = "rejected"
	}
	metrics.RecordCartOperation(op, result)
	builder.Fail(err)
}

func (h *CartHandler) emptyView(sessionID string) dto.CartView {
	return dto.NewCartView(model.CartSnapshot{SessionID: sessionID}, h.currency)
}
