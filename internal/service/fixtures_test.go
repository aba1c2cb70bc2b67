package service

import (
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// blackForest is a 500 base-price cake with one available chocolate flavor.
func blackForest() *model.Product {
	return &model.Product{
		ID:            "cake-1",
		SubcategoryID: "sub-cakes",
		Name:          "Black Forest",
		BasePrice:     dec("500"),
		WeightOptions: []string{"500g", "1kg"},
		Flavors: []model.FlavorVariant{
			{ID: "choc", ProductID: "cake-1", Name: "Chocolate", PriceAdjustment: dec("50"), Available: true},
		},
		ImageURLs: []string{"https://img.example/bf.jpg"},
		Active:    true,
	}
}

// mixedFlavors has an unavailable first flavor, a discount flavor and a premium flavor.
func mixedFlavors() *model.Product {
	return &model.Product{
		ID:            "cake-2",
		Name:          "Celebration",
		BasePrice:     dec("400"),
		WeightOptions: []string{"1kg", "2kg"},
		Flavors: []model.FlavorVariant{
			{ID: "mango", ProductID: "cake-2", Name: "Mango", PriceAdjustment: dec("30"), Available: false},
			{ID: "plain", ProductID: "cake-2", Name: "Plain", PriceAdjustment: dec("-450"), Available: true},
			{ID: "truffle", ProductID: "cake-2", Name: "Truffle", PriceAdjustment: dec("120.50"), Available: true},
		},
		Active: true,
	}
}

// cookie has neither flavors nor weight options.
func cookie() *model.Product {
	return &model.Product{
		ID:            "cookie-1",
		Name:          "Oat Cookie",
		BasePrice:     dec("35.25"),
		WeightOptions: []string{},
		Active:        true,
	}
}
