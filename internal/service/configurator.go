package service

import (
	"errors"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/shopspring/decimal"
)

// Resolve validates a shopper's selection against a product and returns the
// fully specified line configuration with its unit price.
//
// Checks run in order: quantity, flavor, weight. An absent flavor defaults to
// the first declared variant and an absent weight to the first declared option.
// The default flavor is taken in declaration order even when it is unavailable.
// The unit price is not clamped at zero.
func Resolve(product *model.Product, sel model.Selection) (model.LineConfiguration, decimal.Decimal, error) {
	cfg, err := resolve(product, sel)
	metrics.RecordPriceResolution(resolutionResult(err))
	if err != nil {
		return model.LineConfiguration{}, decimal.Zero, err
	}
	return cfg, UnitPrice(cfg), nil
}

func resolutionResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrUnavailableFlavor):
		return "unavailable_flavor"
	case errors.Is(err, ErrInvalidWeightOption):
		return "invalid_weight"
	default:
		return "error"
	}
}

func resolve(product *model.Product, sel model.Selection) (model.LineConfiguration, error) {
	if sel.Quantity <= 0 {
		return model.LineConfiguration{}, ErrInvalidQuantity
	}

	cfg := model.LineConfiguration{
		Product:  product,
		Quantity: sel.Quantity,
	}

	if sel.FlavorID != nil {
		flavor, ok := product.Flavor(*sel.FlavorID)
		if !ok || !flavor.Available {
			return model.LineConfiguration{}, ErrUnavailableFlavor
		}
		cfg.Flavor = flavor
	}

	if sel.WeightLabel != nil {
		if !product.HasWeightOption(*sel.WeightLabel) {
			return model.LineConfiguration{}, ErrInvalidWeightOption
		}
		cfg.Weight = *sel.WeightLabel
	}

	if cfg.Flavor == nil && len(product.Flavors) > 0 {
		cfg.Flavor = &product.Flavors[0]
	}
	if sel.WeightLabel == nil && len(product.WeightOptions) > 0 {
		cfg.Weight = product.WeightOptions[0]
	}

	return cfg, nil
}

// UnitPrice returns base price plus the selected flavor's adjustment.
func UnitPrice(cfg model.LineConfiguration) decimal.Decimal {
	price := cfg.Product.BasePrice
	if cfg.Flavor != nil {
		price = price.Add(cfg.Flavor.PriceAdjustment)
	}
	return price
}

// Subtotal returns unit price times quantity.
func Subtotal(cfg model.LineConfiguration) decimal.Decimal {
	return UnitPrice(cfg).Mul(decimal.NewFromInt(int64(cfg.Quantity)))
}
