package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Selection is the raw configuration a shopper picked for a product.
// Nil FlavorID or WeightLabel means "not chosen".
type Selection struct {
	FlavorID    *string
	WeightLabel *string
	Quantity    int
}

// LineConfiguration is a fully resolved choice of product, flavor, weight and quantity.
// Product and Flavor are shared references and must not be mutated.
type LineConfiguration struct {
	Product  *Product
	Flavor   *FlavorVariant
	Weight   string
	Quantity int
}

// FlavorID returns the selected flavor ID or an empty string.
func (c LineConfiguration) FlavorID() string {
	if c.Flavor == nil {
		return ""
	}
	return c.Flavor.ID
}

// CartLine is one priced configuration inside a cart.
type CartLine struct {
	ID            string
	Configuration LineConfiguration
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal
	AddedAt       time.Time
}

// CartSnapshot is a consistent, point-in-time copy of a cart.
type CartSnapshot struct {
	SessionID string
	Lines     []CartLine
	Total     decimal.Decimal
	Version   int64
	UpdatedAt time.Time
}

// ItemCount returns the sum of quantities across all lines.
func (s CartSnapshot) ItemCount() int {
	n := 0
	for _, l := range s.Lines {
		n += l.Configuration.Quantity
	}
	return n
}
