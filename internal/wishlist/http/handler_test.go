package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/ja-fashion/internal/catalog/infra/memory"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/adapter"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/memory"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalogmem.New(catalogmem.Seed())
	svc := app.NewService(memory.NewWishlistRepo(), adapter.NewCatalogSource(catalogapp.NewService(cat, cat.Cities(), cat)))

	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) { httpx.SetGuest(c, "guest-test") })
	NewHandler(svc).Register(api)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWishlistFlow(t *testing.T) {
	r := newRouter()

	rec := do(r, http.MethodGet, "/api/wishlist", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)

	rec = do(r, http.MethodPost, "/api/wishlist/items", `{"productId":"prod-black-kurta"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Embroidered Black Kurta"`)

	// adding twice keeps one entry
	do(r, http.MethodPost, "/api/wishlist/items", `{"productId":"prod-black-kurta"}`)
	rec = do(r, http.MethodPost, "/api/wishlist/items/prod-indigo-dupatta/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"saved":true}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/wishlist", "")
	assert.Contains(t, rec.Body.String(), `"count":2`)

	rec = do(r, http.MethodGet, "/api/wishlist/items/prod-indigo-dupatta", "")
	assert.JSONEq(t, `{"saved":true}`, rec.Body.String())

	rec = do(r, http.MethodDelete, "/api/wishlist/items/prod-indigo-dupatta", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodPost, "/api/wishlist/items/prod-black-kurta/toggle", "")
	assert.JSONEq(t, `{"saved":false}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/wishlist", "")
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestWishlistErrors(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/wishlist/items", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/wishlist/items", `{"productId":"nope"}`).Code)
}
