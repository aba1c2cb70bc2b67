// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrProductIDRequired is returned when an add-to-cart request has no product.
	ErrProductIDRequired = &ValidationError{Field: "product_id", Message: "is required"}
	// ErrNameRequired is returned when a catalog entity has no name.
	ErrNameRequired = &ValidationError{Field: "name", Message: "is required"}
	// ErrCategoryIDRequired is returned when a subcategory has no parent.
	ErrCategoryIDRequired = &ValidationError{Field: "category_id", Message: "is required"}
)

// QuoteRequest prices a configuration without touching the cart.
//
// @Description Selection to price for a product
type QuoteRequest struct {
	// FlavorID selects a flavor variant. Omit to use the product's first flavor.
	FlavorID *string `json:"flavor_id,omitempty" example:"5f0c6d1e-7a1b-4c2d-9e3f-112233445566"`
	// Weight selects a weight option. Omit to use the product's first option.
	Weight *string `json:"weight,omitempty" example:"1kg"`
	// Quantity must be a positive integer.
	Quantity int `json:"quantity" example:"2"`
} // @name QuoteRequest

// Selection converts the request into a resolver selection.
func (r *QuoteRequest) Selection() model.Selection {
	return model.Selection{
		FlavorID:    trimmedOrNil(r.FlavorID),
		WeightLabel: trimmedOrNil(r.Weight),
		Quantity:    r.Quantity,
	}
}

// AddCartLineRequest adds a configured product to the cart.
//
// @Description Product configuration to add to the cart
type AddCartLineRequest struct {
	ProductID string  `json:"product_id" example:"64f1c0a2e4b0a1b2c3d4e5f6"`
	FlavorID  *string `json:"flavor_id,omitempty"`
	Weight    *string `json:"weight,omitempty" example:"500g"`
	Quantity  int     `json:"quantity" example:"1"`
} // @name AddCartLineRequest

// Validate performs custom validation on the request.
func (r *AddCartLineRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return ErrProductIDRequired
	}
	return nil
}

// Selection converts the request into a resolver selection.
func (r *AddCartLineRequest) Selection() model.Selection {
	return model.Selection{
		FlavorID:    trimmedOrNil(r.FlavorID),
		WeightLabel: trimmedOrNil(r.Weight),
		Quantity:    r.Quantity,
	}
}

// UpdateCartLineRequest changes a line's quantity.
//
// @Description New quantity for a cart line
type UpdateCartLineRequest struct {
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateCartLineRequest

// FlavorRequest is one flavor in a product form.
type FlavorRequest struct {
	// ID keeps an existing flavor across edits. Empty creates a new one.
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name" example:"Chocolate"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment" swaggertype:"string" example:"50"`
	Available       bool            `json:"available" example:"true"`
} // @name FlavorRequest

// ProductRequest creates or replaces a product from the back office.
//
// @Description Product form
type ProductRequest struct {
	SubcategoryID string          `json:"subcategory_id"`
	Name          string          `json:"name" example:"Black Forest Cake"`
	Description   string          `json:"description,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price" swaggertype:"string" example:"500"`
	WeightOptions []string        `json:"weight_options" example:"500g,1kg"`
	ImageURLs     []string        `json:"image_urls"`
	Flavors       []FlavorRequest `json:"flavors"`
	Active        bool            `json:"active" example:"true"`
	Featured      bool            `json:"featured"`
} // @name ProductRequest

// Validate performs custom validation on the request.
func (r *ProductRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if r.BasePrice.IsNegative() {
		return &ValidationError{Field: "base_price", Message: "must not be negative"}
	}
	return nil
}

// ToModel builds the product the request describes. id is empty on create.
func (r *ProductRequest) ToModel(id string) *model.Product {
	flavors := make([]model.FlavorVariant, len(r.Flavors))
	for i, f := range r.Flavors {
		flavors[i] = model.FlavorVariant{
			ID:              f.ID,
			ProductID:       id,
			Name:            f.Name,
			PriceAdjustment: f.PriceAdjustment,
			Available:       f.Available,
		}
	}
	return &model.Product{
		ID:            id,
		SubcategoryID: r.SubcategoryID,
		Name:          r.Name,
		Description:   r.Description,
		BasePrice:     r.BasePrice,
		WeightOptions: r.WeightOptions,
		ImageURLs:     r.ImageURLs,
		Flavors:       flavors,
		Active:        r.Active,
		Featured:      r.Featured,
	}
}

// ToggleRequest sets a boolean product flag.
//
// @Description Flag value
type ToggleRequest struct {
	Value *bool `json:"value" binding:"required" example:"true"`
} // @name ToggleRequest

// CategoryRequest creates a category.
//
// @Description Category form
type CategoryRequest struct {
	Name         string `json:"name" binding:"required" example:"Cakes"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active,omitempty"`
} // @name CategoryRequest

// ToModel builds the category the request describes. Active defaults to true.
func (r *CategoryRequest) ToModel() *model.Category {
	return &model.Category{
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		DisplayOrder: r.DisplayOrder,
		Active:       boolOr(r.Active, true),
	}
}

// SubcategoryRequest creates a subcategory.
//
// @Description Subcategory form
type SubcategoryRequest struct {
	CategoryID   string `json:"category_id"`
	Name         string `json:"name" binding:"required" example:"Birthday Cakes"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active,omitempty"`
} // @name SubcategoryRequest

// Validate performs custom validation on the request.
func (r *SubcategoryRequest) Validate() error {
	if strings.TrimSpace(r.CategoryID) == "" {
		return ErrCategoryIDRequired
	}
	return nil
}

// ToModel builds the subcategory the request describes. Active defaults to true.
func (r *SubcategoryRequest) ToModel() *model.Subcategory {
	return &model.Subcategory{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		DisplayOrder: r.DisplayOrder,
		Active:       boolOr(r.Active, true),
	}
}

// PromotionRequest pins a product into a storefront strip.
//
// @Description Promotion form
type PromotionRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	Type         string `json:"type" binding:"required" example:"top_deal" enums:"top_deal,most_selling"`
	DisplayOrder int    `json:"display_order"`
	Active       *bool  `json:"active,omitempty"`
} // @name PromotionRequest

// ToModel builds the promotion the request describes. Active defaults to true.
func (r *PromotionRequest) ToModel() *model.Promotion {
	return &model.Promotion{
		ProductID:    r.ProductID,
		Type:         model.PromotionType(r.Type),
		DisplayOrder: r.DisplayOrder,
		Active:       boolOr(r.Active, true),
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
