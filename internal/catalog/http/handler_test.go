package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/infra/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := memory.New(memory.Seed())
	r := gin.New()
	NewHandler(app.NewService(cat, cat.Cities(), cat)).Register(r.Group("/api"))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListProductsWithFilter(t *testing.T) {
	rec := get(newRouter(), "/api/products?category=Kurtas,Shawls&in_stock=true&sort=price-low")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Products []domain.Product `json:"products"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "classic-ajrak-shawl", body.Products[0].Slug)
	assert.Equal(t, "ajrak-print-kurta", body.Products[1].Slug)
}

func TestGetProductStatuses(t *testing.T) {
	r := newRouter()

	rec := get(r, "/api/products/indigo-dupatta")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":1800.00`)

	rec = get(r, "/api/products/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestCitiesByProvince(t *testing.T) {
	rec := get(newRouter(), "/api/cities?province=Punjab")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Lahore"`)
	assert.NotContains(t, rec.Body.String(), "Karachi")
}

func TestParseFilterIgnoresBadPrices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?min_price=abc&max_price=-5&size=M&size=L", nil)

	f := ParseFilter(c)
	assert.Zero(t, f.MinPrice)
	assert.Zero(t, f.MaxPrice)
	assert.Equal(t, []string{"M", "L"}, f.Sizes)
	assert.Equal(t, domain.SortNewest, f.SortBy)
}
