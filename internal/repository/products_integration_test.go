//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCake(subcategoryID, name string) *model.Product {
	return &model.Product{
		SubcategoryID: subcategoryID,
		Name:          name,
		Description:   "Layered sponge",
		BasePrice:     decimal.RequireFromString("500.00"),
		WeightOptions: []string{"500g", "1kg"},
		Flavors: []model.FlavorVariant{
			{ID: "choc", Name: "Chocolate", PriceAdjustment: decimal.NewFromInt(50), Available: true},
			{ID: "mango", Name: "Mango", PriceAdjustment: decimal.RequireFromString("-12.50"), Available: false},
		},
		ImageURLs: []string{"https://cdn.example.com/cake.jpg"},
		Active:    true,
	}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewProductRepository(setupTestDBFromSharedContainer(t))

	p := newCake("sub-1", "Black Forest")
	require.NoError(t, repo.Create(ctx, p))
	require.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.ID, p.Flavors[0].ProductID)

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "Black Forest", found.Name)
	assert.True(t, found.BasePrice.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, []string{"500g", "1kg"}, found.WeightOptions)
	require.Len(t, found.Flavors, 2)
	assert.Equal(t, "choc", found.Flavors[0].ID)
	assert.Equal(t, "mango", found.Flavors[1].ID)
	assert.True(t, found.Flavors[1].PriceAdjustment.Equal(decimal.RequireFromString("-12.5")))
	assert.False(t, found.Flavors[1].Available)
	assert.Equal(t, p.ID, found.Flavors[1].ProductID)
}

func TestProductRepository_FindByID_Missing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewProductRepository(setupTestDBFromSharedContainer(t))

	tests := []struct {
		name string
		id   string
	}{
		{"malformed id", "not-an-object-id"},
		{"unknown id", primitive.NewObjectID().Hex()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := repo.FindByID(ctx, tt.id)
			assert.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestProductRepository_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewProductRepository(setupTestDBFromSharedContainer(t))

	first := newCake("sub-cakes", "First")
	second := newCake("sub-cakes", "Second")
	second.Featured = true
	hidden := newCake("sub-cakes", "Hidden")
	hidden.Active = false
	other := newCake("sub-cookies", "Cookie")
	other.Featured = true
	for _, p := range []*model.Product{first, second, hidden, other} {
		require.NoError(t, repo.Create(ctx, p))
		// created_at drives the sort order
		time.Sleep(5 * time.Millisecond)
	}

	tests := []struct {
		name     string
		filter   model.ProductFilter
		expected []string
	}{
		{"everything newest first", model.ProductFilter{}, []string{"Cookie", "Hidden", "Second", "First"}},
		{"active in subcategory", model.ProductFilter{SubcategoryID: "sub-cakes", ActiveOnly: true}, []string{"Second", "First"}},
		{"featured", model.ProductFilter{FeaturedOnly: true, ActiveOnly: true}, []string{"Cookie", "Second"}},
		{"similar excludes self", model.ProductFilter{SubcategoryID: "sub-cakes", ExcludeID: second.ID, ActiveOnly: true}, []string{"First"}},
		{"limit", model.ProductFilter{Limit: 2}, []string{"Cookie", "Hidden"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			names := make([]string, len(products))
			for i, p := range products {
				names[i] = p.Name
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewProductRepository(setupTestDBFromSharedContainer(t))

	p := newCake("sub-1", "Black Forest")
	require.NoError(t, repo.Create(ctx, p))
	createdAt := p.CreatedAt

	t.Run("replaces flavors wholesale", func(t *testing.T) {
		edit := newCake("sub-2", "Black Forest Deluxe")
		edit.ID = p.ID
		edit.WeightOptions = nil
		edit.Flavors = []model.FlavorVariant{{ID: "vanilla", Name: "Vanilla", PriceAdjustment: decimal.Zero, Available: true}}

		require.NoError(t, repo.Update(ctx, edit))

		assert.Equal(t, "Black Forest Deluxe", edit.Name)
		assert.Equal(t, "sub-2", edit.SubcategoryID)
		assert.Empty(t, edit.WeightOptions)
		require.Len(t, edit.Flavors, 1)
		assert.Equal(t, "vanilla", edit.Flavors[0].ID)
		assert.WithinDuration(t, createdAt, edit.CreatedAt, time.Millisecond)
		assert.True(t, edit.UpdatedAt.After(createdAt) || edit.UpdatedAt.Equal(createdAt))
	})

	t.Run("unknown product", func(t *testing.T) {
		ghost := newCake("sub-1", "Ghost")
		ghost.ID = primitive.NewObjectID().Hex()
		assert.ErrorIs(t, repo.Update(ctx, ghost), ErrNotFound)
	})
}

func TestProductRepository_FlagsAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewProductRepository(setupTestDBFromSharedContainer(t))

	p := newCake("sub-1", "Black Forest")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SetActive(ctx, p.ID, false))
	require.NoError(t, repo.SetFeatured(ctx, p.ID, true))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, found.Active)
	assert.True(t, found.Featured)

	assert.ErrorIs(t, repo.SetActive(ctx, primitive.NewObjectID().Hex(), true), ErrNotFound)
	assert.ErrorIs(t, repo.SetFeatured(ctx, "bad", true), ErrNotFound)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)

	found, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
