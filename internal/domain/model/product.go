// Package model defines the core domain entities for the bakery service.
package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNegativeBasePrice is returned when a product is priced below zero.
var ErrNegativeBasePrice = errors.New("base price must not be negative")

// FlavorVariant is a named flavor option for a product with its own price delta.
//
// @Description Flavor option offered for a product
type FlavorVariant struct {
	ID              string          `json:"id" example:"64f1c0a2e4b0a1b2c3d4e5f6"`
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name" example:"Chocolate"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment" swaggertype:"string" example:"50"`
	Available       bool            `json:"available"`
}

// Product is a sellable catalog item.
//
// @Description Catalog product with its flavor variants and weight options
type Product struct {
	ID            string          `json:"id"`
	SubcategoryID string          `json:"subcategory_id,omitempty"`
	Name          string          `json:"name" example:"Black Forest Cake"`
	Description   string          `json:"description,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price" swaggertype:"string" example:"500"`
	WeightOptions []string        `json:"weight_options"`
	Flavors       []FlavorVariant `json:"flavors"`
	ImageURLs     []string        `json:"image_urls"`
	Active        bool            `json:"active"`
	Featured      bool            `json:"featured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Validate checks the product invariants.
func (p *Product) Validate() error {
	if p.BasePrice.IsNegative() {
		return ErrNegativeBasePrice
	}
	return nil
}

// Flavor returns the variant with the given ID, if the product declares it.
func (p *Product) Flavor(id string) (*FlavorVariant, bool) {
	for i := range p.Flavors {
		if p.Flavors[i].ID == id {
			return &p.Flavors[i], true
		}
	}
	return nil, false
}

// HasWeightOption reports whether label is one of the product's weight options.
func (p *Product) HasWeightOption(label string) bool {
	for _, w := range p.WeightOptions {
		if w == label {
			return true
		}
	}
	return false
}
