package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/ja-fashion/internal/order/app"
	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/internal/order/infra/memory"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func place(t *testing.T, svc *app.Service, userID string) domain.Order {
	t.Helper()
	o, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		UserID: userID,
		Customer: domain.Customer{
			Name: "Sana", Phone: "03001234567", Email: "sana@example.com",
			Address: "12 Clifton", City: "Karachi", PostalCode: "75600",
		},
		Shipping: money.FromRupees(200),
		Items: []domain.OrderItemRequest{
			{ProductID: "prod-indigo-dupatta", Name: "Indigo Dupatta", Price: money.FromRupees(1800), Quantity: 2},
		},
	})
	require.NoError(t, err)
	return o
}

func newRouter(svc *app.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		if u := c.GetHeader("X-User"); u != "" {
			httpx.SetUser(c, u, u+"@example.com")
		}
	})
	authed := api.Group("", func(c *gin.Context) {
		if httpx.UserID(c) == "" {
			httpx.Fail(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
			return
		}
	})
	NewHandler(svc).Register(authed, api)
	return r
}

func get(r *gin.Engine, target, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if user != "" {
		req.Header.Set("X-User", user)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListOrders(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())
	first := place(t, svc, "u1")
	require.NoError(t, svc.SetStatus(context.Background(), first.ID, domain.StatusShipped))
	place(t, svc, "u1")
	place(t, svc, "u2")
	r := newRouter(svc)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/orders", "").Code)

	rec := get(r, "/api/orders", "u1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"label":"Shipped","color":"blue"`)
	assert.Contains(t, body, `"itemCount":2`)
	assert.Contains(t, body, `"total":3800.00`)

	rec = get(r, "/api/orders?recent=1", "u2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), first.ID)
}

func TestGetOrder(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())
	mine := place(t, svc, "u1")
	guest := place(t, svc, "")
	r := newRouter(svc)

	tests := []struct {
		name string
		id   string
		user string
		want int
	}{
		{"owner", mine.ID, "u1", http.StatusOK},
		{"other user", mine.ID, "u2", http.StatusNotFound},
		{"anonymous", mine.ID, "", http.StatusNotFound},
		{"guest order by id", guest.ID, "", http.StatusOK},
		{"unknown", "missing", "u1", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, "/api/orders/"+tt.id, tt.user)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	rec := get(r, "/api/orders/"+guest.ID, "")
	assert.Contains(t, rec.Body.String(), `"label":"pending","color":"gray"`)
}
