package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Catalog and cart error keys.
const (
	ErrKeyInvalidQuantity      = "error.cart.invalid_quantity"
	ErrKeyUnavailableFlavor    = "error.cart.unavailable_flavor"
	ErrKeyInvalidWeightOption  = "error.cart.invalid_weight_option"
	ErrKeyCartFull             = "error.cart.full"
	ErrKeyLineNotFound         = "error.cart.line_not_found"
	ErrKeyProductNotFound      = "error.catalog.product_not_found"
	ErrKeyCategoryNotFound     = "error.catalog.category_not_found"
	ErrKeyPromotionNotFound    = "error.catalog.promotion_not_found"
	ErrKeyInvalidPromotionType = "error.catalog.invalid_promotion_type"
	ErrKeyNameRequired         = "error.catalog.name_required"
)
