package http

import (
	"net/http"
	"strconv"

	"github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
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

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/wishlist", h.list)
	r.POST("/wishlist/items", h.add)
	r.POST("/wishlist/items/:productId/toggle", h.toggle)
	r.GET("/wishlist/items/:productId", h.contains)
	r.DELETE("/wishlist/items/:productId", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	owner := httpx.OwnerID(c)
	var (
		items []domain.Item
		err   error
	)
	if n, convErr := strconv.Atoi(c.Query("recent")); convErr == nil {
		items, err = h.svc.Recent(c.Request.Context(), owner, n)
	} else {
		items, err = h.svc.List(c.Request.Context(), owner)
	}
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	count, err := h.svc.Count(c.Request.Context(), owner)
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": count})
}

type addRequest struct {
	ProductID string `json:"productId" form:"productId" binding:"required"`
}

func (h *Handler) add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.BadRequest(c, "productId is required")
		return
	}
	item, err := h.svc.Add(c.Request.Context(), httpx.OwnerID(c), req.ProductID)
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) toggle(c *gin.Context) {
	saved, err := h.svc.Toggle(c.Request.Context(), httpx.OwnerID(c), c.Param("productId"))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *Handler) contains(c *gin.Context) {
	saved, err := h.svc.Contains(c.Request.Context(), httpx.OwnerID(c), c.Param("productId"))
	if err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), httpx.OwnerID(c), c.Param("productId")); err != nil {
		httpx.Error(c, err, rules...)
		return
	}
	c.Status(http.StatusNoContent)
}
