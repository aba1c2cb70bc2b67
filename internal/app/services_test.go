//go:build !integration

package app

import (
	"context"
	"testing"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/mocks"
	"github.com/guttosm/bakery-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	services := InitializeServices(baseConfig(), nil)
	t.Cleanup(services.Close)

	_, err := services.Catalog.Product(context.Background(), "cake-1")
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	cart := services.Carts.GetOrCreate(context.Background(), "")
	assert.NotEmpty(t, cart.SessionID())
	assert.NoError(t, services.Carts.Persist(context.Background(), cart))
}

func TestInitializeServices_WithRepositories(t *testing.T) {
	products := new(mocks.MockProductRepositoryInterface)
	carts := new(mocks.MockCartRepositoryInterface)
	cake := &model.Product{ID: "cake-1", Name: "Black Forest", BasePrice: decimal.NewFromInt(500), Active: true}
	products.On("FindByID", mock.Anything, "cake-1").Return(cake, nil).Once()
	carts.On("Load", mock.Anything, "sess-1").Return(nil, nil).Once()
	carts.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	db := &DatabaseComponents{
		ProductRepo:   products,
		CategoryRepo:  new(mocks.MockCategoryRepositoryInterface),
		PromotionRepo: new(mocks.MockPromotionRepositoryInterface),
		CartRepo:      carts,
	}

	cfg := baseConfig()
	cfg.Cart.MaxLines = 1
	services := InitializeServices(cfg, db)
	t.Cleanup(services.Close)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		p, err := services.Catalog.Product(ctx, "cake-1")
		require.NoError(t, err)
		assert.Equal(t, "Black Forest", p.Name)
	}

	cart := services.Carts.GetOrCreate(ctx, "sess-1")
	cfgLine, _, err := service.Resolve(cake, model.Selection{Quantity: 1})
	require.NoError(t, err)
	_, err = cart.AddLine(cfgLine)
	require.NoError(t, err)
	_, err = cart.AddLine(cfgLine)
	assert.ErrorIs(t, err, service.ErrCartFull)
	require.NoError(t, services.Carts.Persist(ctx, cart))

	products.AssertExpectations(t) // second lookup served from the product cache
	carts.AssertExpectations(t)
}
