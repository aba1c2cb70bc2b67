package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates the data store is temporarily unavailable.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeInvalidQuantity indicates a non-positive quantity.
	ErrCodeInvalidQuantity = "invalid_quantity"
	// ErrCodeUnavailableFlavor indicates an unknown or unavailable flavor.
	ErrCodeUnavailableFlavor = "unavailable_flavor"
	// ErrCodeInvalidWeight indicates a weight the product does not offer.
	ErrCodeInvalidWeight = "invalid_weight_option"
	// ErrCodeCartFull indicates the cart reached its line limit.
	ErrCodeCartFull = "cart_full"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_quantity"`
	Message string `json:"message,omitempty" example:"Quantity must be a positive whole number"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// CartLineView is a cart line as shown to the shopper.
type CartLineView struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name" example:"Black Forest Cake"`
	ImageURL    string          `json:"image_url,omitempty"`
	FlavorID    string          `json:"flavor_id,omitempty"`
	FlavorName  string          `json:"flavor_name,omitempty" example:"Chocolate"`
	Weight      string          `json:"weight,omitempty" example:"1kg"`
	Quantity    int             `json:"quantity" example:"2"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"550"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string" example:"1100"`
	AddedAt     time.Time       `json:"added_at"`
} // @name CartLineView

// CartView is the shopper's cart with its totals.
type CartView struct {
	SessionID string          `json:"session_id"`
	Lines     []CartLineView  `json:"lines"`
	ItemCount int             `json:"item_count" example:"2"`
	Total     decimal.Decimal `json:"total" swaggertype:"string" example:"1100"`
	Currency  string          `json:"currency" example:"INR"`
	Version   int64           `json:"version"`
} // @name CartView

// NewCartLineView flattens a cart line for the API.
func NewCartLineView(l model.CartLine) CartLineView {
	cfg := l.Configuration
	v := CartLineView{
		ID:        l.ID,
		Weight:    cfg.Weight,
		Quantity:  cfg.Quantity,
		UnitPrice: l.UnitPrice,
		Subtotal:  l.Subtotal,
		AddedAt:   l.AddedAt,
	}
	if p := cfg.Product; p != nil {
		v.ProductID = p.ID
		v.ProductName = p.Name
		if len(p.ImageURLs) > 0 {
			v.ImageURL = p.ImageURLs[0]
		}
	}
	if f := cfg.Flavor; f != nil {
		v.FlavorID = f.ID
		v.FlavorName = f.Name
	}
	return v
}

// NewCartView renders a cart snapshot.
func NewCartView(snap model.CartSnapshot, currency string) CartView {
	lines := make([]CartLineView, len(snap.Lines))
	for i, l := range snap.Lines {
		lines[i] = NewCartLineView(l)
	}
	return CartView{
		SessionID: snap.SessionID,
		Lines:     lines,
		ItemCount: snap.ItemCount(),
		Total:     snap.Total,
		Currency:  currency,
		Version:   snap.Version,
	}
}

// QuoteView is the priced configuration shown before adding to the cart.
type QuoteView struct {
	ProductID string          `json:"product_id"`
	FlavorID  string          `json:"flavor_id,omitempty"`
	Weight    string          `json:"weight,omitempty" example:"500g"`
	Quantity  int             `json:"quantity" example:"2"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"550"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string" example:"1100"`
	Currency  string          `json:"currency" example:"INR"`
} // @name QuoteView

// NewQuoteView renders a resolved configuration and its price.
func NewQuoteView(cfg model.LineConfiguration, unitPrice decimal.Decimal, currency string) QuoteView {
	v := QuoteView{
		Weight:    cfg.Weight,
		Quantity:  cfg.Quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(cfg.Quantity))),
		Currency:  currency,
		FlavorID:  cfg.FlavorID(),
	}
	if cfg.Product != nil {
		v.ProductID = cfg.Product.ID
	}
	return v
}

// HomeView is the storefront landing content.
type HomeView struct {
	Categories  []model.Category `json:"categories"`
	TopDeals    []model.Product  `json:"top_deals"`
	MostSelling []model.Product  `json:"most_selling"`
} // @name HomeView

// CategoryTreeView is a category with its subcategories.
type CategoryTreeView struct {
	model.Category
	Subcategories []model.Subcategory `json:"subcategories"`
} // @name CategoryTreeView

// ProductDetailView is a product with related products.
type ProductDetailView struct {
	Product model.Product   `json:"product"`
	Similar []model.Product `json:"similar"`
} // @name ProductDetailView
