package service

import (
	"testing"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		product       func() *model.Product
		selection     model.Selection
		wantErr       error
		wantFlavorID  string
		wantWeight    string
		wantUnitPrice string
	}{
		{
			name:          "empty selection defaults to first flavor and weight",
			product:       blackForest,
			selection:     model.Selection{Quantity: 1},
			wantFlavorID:  "choc",
			wantWeight:    "500g",
			wantUnitPrice: "550",
		},
		{
			name:          "explicit flavor and weight",
			product:       blackForest,
			selection:     model.Selection{FlavorID: strPtr("choc"), WeightLabel: strPtr("1kg"), Quantity: 2},
			wantFlavorID:  "choc",
			wantWeight:    "1kg",
			wantUnitPrice: "550",
		},
		{
			name:      "zero quantity",
			product:   blackForest,
			selection: model.Selection{Quantity: 0},
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "negative quantity",
			product:   blackForest,
			selection: model.Selection{Quantity: -3},
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "quantity is checked before flavor",
			product:   blackForest,
			selection: model.Selection{FlavorID: strPtr("nope"), Quantity: 0},
			wantErr:   ErrInvalidQuantity,
		},
		{
			name:      "unknown flavor",
			product:   blackForest,
			selection: model.Selection{FlavorID: strPtr("vanilla"), Quantity: 1},
			wantErr:   ErrUnavailableFlavor,
		},
		{
			name:      "unavailable flavor",
			product:   mixedFlavors,
			selection: model.Selection{FlavorID: strPtr("mango"), Quantity: 1},
			wantErr:   ErrUnavailableFlavor,
		},
		{
			name:      "flavor is checked before weight",
			product:   mixedFlavors,
			selection: model.Selection{FlavorID: strPtr("mango"), WeightLabel: strPtr("5kg"), Quantity: 1},
			wantErr:   ErrUnavailableFlavor,
		},
		{
			name:      "unknown weight",
			product:   blackForest,
			selection: model.Selection{WeightLabel: strPtr("2kg"), Quantity: 1},
			wantErr:   ErrInvalidWeightOption,
		},
		{
			name:      "weight on a product without options",
			product:   cookie,
			selection: model.Selection{WeightLabel: strPtr("500g"), Quantity: 1},
			wantErr:   ErrInvalidWeightOption,
		},
		{
			name:          "default flavor ignores availability",
			product:       mixedFlavors,
			selection:     model.Selection{Quantity: 1},
			wantFlavorID:  "mango",
			wantWeight:    "1kg",
			wantUnitPrice: "430",
		},
		{
			name:          "negative price is not clamped",
			product:       mixedFlavors,
			selection:     model.Selection{FlavorID: strPtr("plain"), Quantity: 1},
			wantFlavorID:  "plain",
			wantWeight:    "1kg",
			wantUnitPrice: "-50",
		},
		{
			name:          "fractional adjustment",
			product:       mixedFlavors,
			selection:     model.Selection{FlavorID: strPtr("truffle"), WeightLabel: strPtr("2kg"), Quantity: 4},
			wantFlavorID:  "truffle",
			wantWeight:    "2kg",
			wantUnitPrice: "520.50",
		},
		{
			name:          "product without flavors or weights",
			product:       cookie,
			selection:     model.Selection{Quantity: 12},
			wantFlavorID:  "",
			wantWeight:    "",
			wantUnitPrice: "35.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := tt.product()

			cfg, price, err := Resolve(product, tt.selection)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, model.LineConfiguration{}, cfg)
				assert.True(t, price.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Same(t, product, cfg.Product)
			assert.Equal(t, tt.wantFlavorID, cfg.FlavorID())
			assert.Equal(t, tt.wantWeight, cfg.Weight)
			assert.Equal(t, tt.selection.Quantity, cfg.Quantity)
			assert.True(t, dec(tt.wantUnitPrice).Equal(price), "unit price %s, want %s", price, tt.wantUnitPrice)
		})
	}
}

func TestResolve_FlavorBelongsToProduct(t *testing.T) {
	product := mixedFlavors()

	cfg, _, err := Resolve(product, model.Selection{FlavorID: strPtr("truffle"), Quantity: 1})

	require.NoError(t, err)
	assert.Same(t, &product.Flavors[2], cfg.Flavor)
	assert.Equal(t, product.ID, cfg.Flavor.ProductID)
}

func TestResolve_IsDeterministic(t *testing.T) {
	product := blackForest()
	sel := model.Selection{WeightLabel: strPtr("1kg"), Quantity: 3}

	cfg1, price1, err1 := Resolve(product, sel)
	cfg2, price2, err2 := Resolve(product, sel)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, cfg1, cfg2)
	assert.True(t, price1.Equal(price2))
}

func TestResolve_DoesNotMutateProduct(t *testing.T) {
	product := mixedFlavors()
	before := *mixedFlavors()

	_, _, _ = Resolve(product, model.Selection{Quantity: 1})
	_, _, _ = Resolve(product, model.Selection{FlavorID: strPtr("mango"), Quantity: 1})

	assert.Equal(t, before.Flavors, product.Flavors)
	assert.Equal(t, before.WeightOptions, product.WeightOptions)
	assert.True(t, before.BasePrice.Equal(product.BasePrice))
}

func TestUnitPriceAndSubtotal(t *testing.T) {
	product := blackForest()
	cfg := model.LineConfiguration{Product: product, Flavor: &product.Flavors[0], Weight: "1kg", Quantity: 2}

	assert.True(t, dec("550").Equal(UnitPrice(cfg)))
	assert.True(t, dec("1100").Equal(Subtotal(cfg)))

	cfg.Flavor = nil
	assert.True(t, dec("500").Equal(UnitPrice(cfg)))
	assert.True(t, dec("1000").Equal(Subtotal(cfg)))
}

func TestResolutionResult(t *testing.T) {
	assert.Equal(t, "success", resolutionResult(nil))
	assert.Equal(t, "invalid_quantity", resolutionResult(ErrInvalidQuantity))
	assert.Equal(t, "unavailable_flavor", resolutionResult(ErrUnavailableFlavor))
	assert.Equal(t, "invalid_weight", resolutionResult(ErrInvalidWeightOption))
	assert.Equal(t, "error", resolutionResult(ErrCartFull))
}
