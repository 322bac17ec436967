package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dwikikusuma/ja-fashion/internal/chat/app"
	"github.com/dwikikusuma/ja-fashion/internal/chat/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *app.Service
	log *slog.Logger
}

func NewHandler(svc *app.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/chat", h.chat)
}

type chatRequest struct {
	Messages []domain.Message `json:"messages"`
}

// chat streams the reply as chunked plain text. Nothing is written until
// the provider produces its first delta so upstream failures still get a
// proper status.
func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "malformed chat request")
		return
	}

	out, errs, err := h.svc.Reply(c.Request.Context(), req.Messages)
	if err != nil {
		httpx.Error(c, err, httpx.InvalidArgument(app.ErrInvalidInput))
		return
	}

	first, ok := <-out
	if !ok {
		if err := <-errs; err != nil {
			_ = c.Error(err)
			httpx.Fail(c, http.StatusBadGateway, "UPSTREAM", "chat provider unavailable")
			return
		}
		c.Status(http.StatusOK)
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	for delta, open := first, true; open; delta, open = <-out {
		if _, err := io.WriteString(c.Writer, delta); err != nil {
			break
		}
		c.Writer.Flush()
		if ctx.Err() != nil {
			break
		}
	}
	// drain so the provider goroutine can exit if the client went away
	for range out {
	}
	if err := <-errs; err != nil {
		h.log.Warn("chat stream ended early", slog.String("err", err.Error()))
	}
}
