package model

import "time"

// PromotionType classifies a storefront promotion slot.
type PromotionType string

const (
	// PromotionTopDeal places a product in the "top deals" strip.
	PromotionTopDeal PromotionType = "top_deal"
	// PromotionMostSelling places a product in the "most selling" strip.
	PromotionMostSelling PromotionType = "most_selling"
)

// Valid reports whether t is a known promotion type.
func (t PromotionType) Valid() bool {
	return t == PromotionTopDeal || t == PromotionMostSelling
}

// Category is a top-level storefront grouping (e.g. Cakes).
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Subcategory belongs to a Category and groups products.
type Subcategory struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Promotion pins a product into a storefront strip.
type Promotion struct {
	ID           string        `json:"id"`
	ProductID    string        `json:"product_id"`
	Type         PromotionType `json:"type"`
	DisplayOrder int           `json:"display_order"`
	Active       bool          `json:"active"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	SubcategoryID string
	ExcludeID     string
	ActiveOnly    bool
	FeaturedOnly  bool
	Limit         int
}
