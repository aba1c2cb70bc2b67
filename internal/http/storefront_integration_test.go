//go:build integration

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bakery-service/internal/domain/dto"
	"github.com/guttosm/bakery-service/internal/domain/model"
	"github.com/guttosm/bakery-service/internal/middleware"
	"github.com/guttosm/bakery-service/internal/repository"
	"github.com/guttosm/bakery-service/internal/service"
	"github.com/guttosm/bakery-service/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storefront struct {
	db      *repository.MongoDB
	catalog *service.CatalogServiceImpl
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.DBName(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Database.Drop(ctx)
		_ = db.Close(ctx)
	})

	catalog := service.NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewPromotionRepository(db),
		service.WithProductCache(100, time.Minute),
	)
	t.Cleanup(catalog.Close)

	return &storefront{db: db, catalog: catalog}
}

// router builds a fresh router with its own in-memory cart sessions, as after a restart.
func (s *storefront) router(t *testing.T) (*gin.Engine, *service.CartStore) {
	t.Helper()
	carts := service.NewCartStore(service.CartStoreConfig{
		MaxSessions: 100,
		SessionTTL:  time.Hour,
		MaxLines:    10,
	}, repository.NewCartRepository(s.db))
	t.Cleanup(carts.Stop)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.EnableIdempotency = false
	cfg.Catalog = s.catalog
	cfg.Carts = carts
	return NewRouter(nil, cfg), carts
}

func send(router *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.CartSessionHeader, session)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStorefront_AdminToCartFlow(t *testing.T) {
	s := newStorefront(t)
	router, _ := s.router(t)

	created := send(router, http.MethodPost, "/api/admin/products", "", `{
		"name": "Black Forest",
		"base_price": "500",
		"weight_options": ["500g", " ", "1kg"],
		"flavors": [
			{"name": "Chocolate", "price_adjustment": "50", "available": true},
			{"name": "", "price_adjustment": "10", "available": true},
			{"name": "Mango", "price_adjustment": "30", "available": false}
		],
		"active": true
	}`)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	product := decodeData[model.Product](t, created)
	require.NotEmpty(t, product.ID)
	assert.Equal(t, []string{"500g", "1kg"}, product.WeightOptions)
	require.Len(t, product.Flavors, 2)

	detail := send(router, http.MethodGet, "/api/products/"+product.ID, "", "")
	require.Equal(t, http.StatusOK, detail.Code)
	chocolate := decodeData[dto.ProductDetailView](t, detail).Product.Flavors[0]
	assert.Equal(t, "Chocolate", chocolate.Name)

	unavailable := send(router, http.MethodPost, "/api/cart/lines", "", `{"product_id": "`+product.ID+`", "flavor_id": "`+product.Flavors[1].ID+`", "quantity": 1}`)
	assert.Equal(t, http.StatusBadRequest, unavailable.Code)

	added := send(router, http.MethodPost, "/api/cart/lines", "", `{"product_id": "`+product.ID+`", "weight": "1kg", "quantity": 2}`)
	require.Equal(t, http.StatusCreated, added.Code, added.Body.String())
	session := added.Header().Get(middleware.CartSessionHeader)
	require.NotEmpty(t, session)
	view := decodeData[dto.CartView](t, added)
	assert.True(t, decimal.RequireFromString("1100").Equal(view.Total))

	// A new process restores the cart from its snapshot.
	restarted, _ := s.router(t)
	restored := send(restarted, http.MethodGet, "/api/cart", session, "")
	require.Equal(t, http.StatusOK, restored.Code)
	again := decodeData[dto.CartView](t, restored)
	require.Len(t, again.Lines, 1)
	assert.Equal(t, view.Lines[0].ID, again.Lines[0].ID)
	assert.Equal(t, "Chocolate", again.Lines[0].FlavorName)
	assert.True(t, decimal.RequireFromString("1100").Equal(again.Total))

	cleared := send(restarted, http.MethodDelete, "/api/cart", session, "")
	require.Equal(t, http.StatusOK, cleared.Code)

	fresh, _ := s.router(t)
	empty := decodeData[dto.CartView](t, send(fresh, http.MethodGet, "/api/cart", session, ""))
	assert.Empty(t, empty.Lines)
}

func TestStorefront_InactiveProductsAreHidden(t *testing.T) {
	s := newStorefront(t)
	router, _ := s.router(t)

	created := send(router, http.MethodPost, "/api/admin/products", "", `{"name": "Rusk", "base_price": "40", "active": true, "featured": true}`)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeData[model.Product](t, created).ID

	featured := decodeData[[]model.Product](t, send(router, http.MethodGet, "/api/products/featured", "", ""))
	require.Len(t, featured, 1)

	toggled := send(router, http.MethodPatch, "/api/admin/products/"+id+"/active", "", `{"value": false}`)
	require.Equal(t, http.StatusOK, toggled.Code)

	assert.Equal(t, http.StatusNotFound, send(router, http.MethodGet, "/api/products/"+id, "", "").Code)
	assert.Empty(t, decodeData[[]model.Product](t, send(router, http.MethodGet, "/api/products/featured", "", "")))
	assert.Equal(t, http.StatusNotFound, send(router, http.MethodPost, "/api/products/"+id+"/quote", "", `{"quantity": 1}`).Code)
	assert.Equal(t, http.StatusNotFound, send(router, http.MethodPost, "/api/cart/lines", "", `{"product_id": "`+id+`", "quantity": 1}`).Code)
}
