// Package http exposes the catalog over JSON.
package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/gin-gonic/gin"
)

var rules = []httpx.Rule{
	httpx.InvalidArgument(app.ErrInvalidInput),
	httpx.NotFoundRule(app.ErrNotFound),
}

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/products", h.listProducts)
	r.GET("/products/:slug", h.getProduct)
	r.GET("/traditional", h.traditional)
	r.GET("/colors", h.colors)
	r.GET("/sizes", h.sizes)
	r.GET("/cities", h.cities)
	r.GET("/cities/:slug", h.city)
	r.GET("/provinces", h.provinces)
	r.GET("/testimonials", h.testimonials)
	r.GET("/portfolio", h.portfolio)
}

// ParseFilter reads the catalog sidebar state from the query string.
// Multi-valued fields accept repeated keys or comma-separated values.
func ParseFilter(c *gin.Context) domain.Filter {
	return domain.Filter{
		Search:      strings.TrimSpace(c.Query("q")),
		Categories:  multi(c, "category"),
		Colors:      multi(c, "color"),
		Sizes:       multi(c, "size"),
		MinPrice:    rupees(c.Query("min_price")),
		MaxPrice:    rupees(c.Query("max_price")),
		InStockOnly: c.Query("in_stock") == "true" || c.Query("in_stock") == "1",
		SortBy:      c.DefaultQuery("sort", domain.SortNewest),
	}
}

func multi(c *gin.Context, key string) []string {
	var out []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func rupees(s string) money.Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return money.FromRupees(f)
}

func (h *Handler) listProducts(c *gin.Context) {
	var (
		products []domain.Product
		err      error
	)
	switch {
	case c.Query("featured") == "true":
		products, err = h.svc.FeaturedProducts(c.Request.Context())
	case c.Query("new") == "true":
		products, err = h.svc.NewProducts(c.Request.Context())
	default:
		products, err = h.svc.Browse(c.Request.Context(), ParseFilter(c))
	}
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *Handler) getProduct(c *gin.Context) {
	p, err := h.svc.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) traditional(c *gin.Context) {
	products, err := h.svc.TraditionalWear(c.Request.Context())
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *Handler) colors(c *gin.Context) {
	colors, err := h.svc.UniqueColors(c.Request.Context())
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colors": colors})
}

func (h *Handler) sizes(c *gin.Context) {
	sizes, err := h.svc.UniqueSizes(c.Request.Context())
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sizes": sizes})
}

func (h *Handler) cities(c *gin.Context) {
	var (
		cities []domain.City
		err    error
	)
	if p := c.Query("province"); p != "" {
		cities, err = h.svc.CitiesByProvince(c.Request.Context(), p)
	} else {
		cities, err = h.svc.AllCities(c.Request.Context())
	}
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *Handler) city(c *gin.Context) {
	city, err := h.svc.CityBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, city)
}

func (h *Handler) provinces(c *gin.Context) {
	ps, err := h.svc.UniqueProvinces(c.Request.Context())
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provinces": ps})
}

func (h *Handler) testimonials(c *gin.Context) {
	ts, err := h.svc.Testimonials(c.Request.Context())
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": ts})
}

func (h *Handler) portfolio(c *gin.Context) {
	items, err := h.svc.Portfolio(c.Request.Context())
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
