package http

import (
	"net/http"

	"github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	"github.com/dwikikusuma/ja-fashion/internal/checkout/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
)

var Rules = []httpx.Rule{
	httpx.InvalidArgument(app.ErrInvalidInput),
	{Err: app.ErrInvalidPromo, Status: http.StatusBadRequest, Code: "INVALID_PROMO"},
	{Err: app.ErrEmptyCart, Status: http.StatusConflict, Code: "EMPTY_CART"},
	{Err: app.ErrProductUnavailable, Status: http.StatusConflict, Code: "PRODUCT_UNAVAILABLE"},
}

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/checkout/quote", h.quote)
	r.POST("/checkout/promo", h.promo)
	r.POST("/checkout/order", h.placeOrder)
}

func (h *Handler) quote(c *gin.Context) {
	q, err := h.svc.Quote(c.Request.Context(), app.QuoteInput{
		OwnerID:   httpx.OwnerID(c),
		PromoCode: c.Query("promo"),
		City:      c.Query("city"),
	})
	if err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusOK, q)
}

type promoRequest struct {
	Code string `json:"code" form:"code" binding:"required"`
}

func (h *Handler) promo(c *gin.Context) {
	var req promoRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.BadRequest(c, "code is required")
		return
	}
	p, err := h.svc.LookupPromo(req.Code)
	if err != nil || p == nil {
		httpx.Fail(c, http.StatusBadRequest, "INVALID_PROMO", "Please enter a valid promo code.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":        p.Code,
		"percent":     p.Percent,
		"description": p.Code + " - " + p.Description,
	})
}

// OrderRequest is the checkout form.
type OrderRequest struct {
	domain.Address
	PromoCode string `json:"promoCode" form:"promoCode"`
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.BadRequest(c, "malformed checkout form")
		return
	}
	p, err := h.svc.PlaceOrder(c.Request.Context(), app.PlaceOrderInput{
		OwnerID:   httpx.OwnerID(c),
		UserID:    httpx.UserID(c),
		Address:   req.Address,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusCreated, p)
}
