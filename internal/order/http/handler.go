package http

import (
	"net/http"
	"strconv"

	"github.com/dwikikusuma/ja-fashion/internal/order/app"
	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
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

// Register mounts order history. List requires a signed-in user; the
// group is expected to run RequireAuth for it.
func (h *Handler) Register(authed, public gin.IRouter) {
	authed.GET("/orders", h.list)
	public.GET("/orders/:id", h.get)
}

// View is an order with its display badge.
type View struct {
	domain.Order
	Badge     domain.Badge `json:"badge"`
	ItemCount int          `json:"itemCount"`
}

func NewView(o domain.Order) View {
	if o.Items == nil {
		o.Items = []domain.OrderItem{}
	}
	return View{Order: o, Badge: domain.StatusBadge(o.Status), ItemCount: o.ItemCount()}
}

func (h *Handler) list(c *gin.Context) {
	var (
		orders []domain.Order
		err    error
	)
	if n, convErr := strconv.Atoi(c.Query("recent")); convErr == nil {
		orders, err = h.svc.Recent(c.Request.Context(), httpx.UserID(c), n)
	} else {
		orders, err = h.svc.List(c.Request.Context(), httpx.UserID(c))
	}
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	views := make([]View, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewView(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

func (h *Handler) get(c *gin.Context) {
	o, err := h.svc.GetForUser(c.Request.Context(), c.Param("id"), httpx.UserID(c))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, NewView(o))
}
