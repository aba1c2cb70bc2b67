package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartLineRequest(t *testing.T) {
	t.Run("requires a product", func(t *testing.T) {
		req := AddCartLineRequest{ProductID: "  ", Quantity: 1}

		assert.Equal(t, ErrProductIDRequired, req.Validate())
	})

	t.Run("blank choices count as not chosen", func(t *testing.T) {
		blank := " "
		weight := " 1kg "
		req := AddCartLineRequest{ProductID: "p1", FlavorID: &blank, Weight: &weight, Quantity: 2}

		sel := req.Selection()

		require.NoError(t, req.Validate())
		assert.Nil(t, sel.FlavorID)
		require.NotNil(t, sel.WeightLabel)
		assert.Equal(t, "1kg", *sel.WeightLabel)
		assert.Equal(t, 2, sel.Quantity)
	})

	t.Run("quantity is passed through unchecked", func(t *testing.T) {
		req := QuoteRequest{Quantity: -1}

		assert.Equal(t, -1, req.Selection().Quantity)
	})
}

func TestProductRequest(t *testing.T) {
	t.Run("accepts numeric and string prices", func(t *testing.T) {
		var req ProductRequest
		body := `{"name":"Cake","base_price":500,"flavors":[{"name":"Mango","price_adjustment":"-25.5","available":true}]}`

		require.NoError(t, json.Unmarshal([]byte(body), &req))

		assert.True(t, decimal.RequireFromString("500").Equal(req.BasePrice))
		assert.True(t, decimal.RequireFromString("-25.5").Equal(req.Flavors[0].PriceAdjustment))
	})

	tests := []struct {
		name    string
		req     ProductRequest
		wantErr bool
	}{
		{name: "valid", req: ProductRequest{Name: "Cake", BasePrice: decimal.NewFromInt(10)}},
		{name: "blank name", req: ProductRequest{Name: " "}, wantErr: true},
		{name: "negative price", req: ProductRequest{Name: "Cake", BasePrice: decimal.NewFromInt(-1)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("to model keeps flavor ids", func(t *testing.T) {
		req := ProductRequest{
			Name:      "Cake",
			BasePrice: decimal.NewFromInt(400),
			Flavors:   []FlavorRequest{{ID: "f1", Name: "Vanilla"}, {Name: "New"}},
		}

		p := req.ToModel("p1")

		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "f1", p.Flavors[0].ID)
		assert.Equal(t, "p1", p.Flavors[1].ProductID)
		assert.Empty(t, p.Flavors[1].ID)
	})
}

func TestCatalogRequests_DefaultActive(t *testing.T) {
	inactive := false

	assert.True(t, (&CategoryRequest{Name: "Cakes"}).ToModel().Active)
	assert.False(t, (&CategoryRequest{Name: "Cakes", Active: &inactive}).ToModel().Active)
	assert.True(t, (&SubcategoryRequest{CategoryID: "c1", Name: "Birthday"}).ToModel().Active)
	assert.True(t, (&PromotionRequest{ProductID: "p1", Type: "top_deal"}).ToModel().Active)
	assert.Equal(t, ErrCategoryIDRequired, (&SubcategoryRequest{Name: "Birthday"}).Validate())
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "product_id: is required", ErrProductIDRequired.Error())
}
