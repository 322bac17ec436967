package http

import (
	"net/http"

	"github.com/dwikikusuma/ja-fashion/internal/cart/app"
	"github.com/dwikikusuma/ja-fashion/internal/cart/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/gin-gonic/gin"
)

var rules = []httpx.Rule{
	httpx.InvalidArgument(app.ErrInvalidInput),
	httpx.NotFoundRule(app.ErrNotFound),
	{Err: app.ErrOutOfStock, Status: http.StatusConflict, Code: "OUT_OF_STOCK"},
}

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the cart routes. The group must run the identity middleware.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/cart", h.get)
	r.POST("/cart/items", h.add)
	r.PATCH("/cart/items/:productId", h.setQuantity)
	r.DELETE("/cart/items/:productId", h.remove)
	r.DELETE("/cart", h.clear)
}

// View is the cart with its derived totals.
type View struct {
	domain.Cart
	TotalItems int          `json:"totalItems"`
	TotalPrice money.Amount `json:"totalPrice"`
}

func NewView(c domain.Cart) View {
	if c.Items == nil {
		c.Items = []domain.CartItem{}
	}
	return View{Cart: c, TotalItems: c.TotalItems(), TotalPrice: c.TotalPrice()}
}

type addRequest struct {
	ProductID string `json:"productId" form:"productId" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required"`
}

func (h *Handler) get(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context(), httpx.OwnerID(c))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, NewView(cart))
}

func (h *Handler) add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.BadRequest(c, "productId is required")
		return
	}
	cart, err := h.svc.AddProduct(c.Request.Context(), httpx.OwnerID(c), req.ProductID, req.Quantity)
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, NewView(cart))
}

func (h *Handler) setQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.BadRequest(c, "quantity is required")
		return
	}
	cart, err := h.svc.UpdateQuantity(c.Request.Context(), httpx.OwnerID(c), c.Param("productId"), *req.Quantity)
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, NewView(cart))
}

func (h *Handler) remove(c *gin.Context) {
	cart, err := h.svc.RemoveItem(c.Request.Context(), httpx.OwnerID(c), c.Param("productId"))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, NewView(cart))
}

func (h *Handler) clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), httpx.OwnerID(c)); err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.Status(http.StatusNoContent)
}
