//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDBFromSharedContainer(t)

	t.Run("collections are wired", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, "products", db.Products.Name())
		assert.Equal(t, "categories", db.Categories.Name())
		assert.Equal(t, "subcategories", db.Subcategories.Name())
		assert.Equal(t, "promotions", db.Promotions.Name())
		assert.Equal(t, "carts", db.Carts.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
		assert.NoError(t, db.Check())
	})

	t.Run("product indexes exist", func(t *testing.T) {
		names := indexNames(t, ctx, db.Products)
		assert.Contains(t, names, "subcategory_id_1_is_active_1")
		assert.Contains(t, names, "is_featured_1_is_active_1")
	})

	t.Run("carts TTL can be replaced", func(t *testing.T) {
		require.NoError(t, db.SetCartsTTL(ctx, time.Hour))
		require.NoError(t, db.SetCartsTTL(ctx, 2*time.Hour))

		var idx bson.M
		for _, candidate := range listIndexes(t, ctx, db.Carts) {
			if candidate["name"] == "updated_at_1" {
				idx = candidate
			}
		}
		require.NotNil(t, idx)
		assert.EqualValues(t, 7200, idx["expireAfterSeconds"])
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	t.Parallel()
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 2 * time.Second
	cfg.ServerSelectionTimeout = time.Second

	db, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
}

func indexNames(t *testing.T, ctx context.Context, coll *mongo.Collection) []string {
	t.Helper()
	indexes := listIndexes(t, ctx, coll)
	names := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		if name, ok := idx["name"].(string); ok {
			names = append(names, name)
		}
	}
	return names
}

func listIndexes(t *testing.T, ctx context.Context, coll *mongo.Collection) []bson.M {
	t.Helper()
	cursor, err := coll.Indexes().List(ctx)
	require.NoError(t, err)
	var indexes []bson.M
	require.NoError(t, cursor.All(ctx, &indexes))
	return indexes
}
