package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	checkouthttp "github.com/dwikikusuma/ja-fashion/internal/checkout/http"
	"github.com/dwikikusuma/ja-fashion/internal/payment/app"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 64 << 10

const invalidAmountMsg = "Amount must be a valid positive number."

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the payment routes. The webhook must stay outside any
// middleware that reads or rewrites the request body.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/create-payment-intent", h.createIntent)
	r.POST("/checkout/pay", h.pay)
	r.POST("/stripe/webhook", h.webhook)
}

type intentRequest struct {
	Amount json.RawMessage `json:"amount"`
}

func (h *Handler) createIntent(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": invalidAmountMsg})
		return
	}
	var amount float64
	if err := json.Unmarshal(req.Amount, &amount); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": invalidAmountMsg})
		return
	}

	intent, err := h.svc.CreatePaymentIntent(c.Request.Context(), amount)
	if errors.Is(err, app.ErrInvalidAmount) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": invalidAmountMsg})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

func (h *Handler) pay(c *gin.Context) {
	var req checkouthttp.OrderRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.BadRequest(c, "malformed checkout form")
		return
	}
	p, err := h.svc.PayForOrder(c.Request.Context(), checkoutapp.PlaceOrderInput{
		OwnerID:   httpx.OwnerID(c),
		UserID:    httpx.UserID(c),
		Address:   req.Address,
		PromoCode: req.PromoCode,
	})
	if err != nil {
		httpx.Error(c, err, checkouthttp.Rules...)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httpx.BadRequest(c, "unreadable body")
		return
	}
	err = h.svc.HandleWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httpx.Error(c, err, httpx.Rule{Err: app.ErrInvalidSignature, Status: http.StatusBadRequest, Code: "INVALID_SIGNATURE"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
