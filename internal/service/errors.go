package service

import "errors"

var (
	// ErrInvalidQuantity is returned when a quantity is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrUnavailableFlavor is returned when the chosen flavor is unknown to the product or not available.
	ErrUnavailableFlavor = errors.New("flavor is not available for this product")
	// ErrInvalidWeightOption is returned when the chosen weight is not offered by the product.
	ErrInvalidWeightOption = errors.New("weight option is not offered for this product")
	// ErrLineNotFound is returned when a cart line ID does not exist.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrCartFull is returned when a cart already holds the maximum number of lines.
	ErrCartFull = errors.New("cart line limit reached")
	// ErrProductNotFound is returned when a product ID does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrRepositoryNotConfigured is returned when the backing store is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
)
