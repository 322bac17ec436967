package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/app"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var Rules = []httpx.Rule{
	httpx.InvalidArgument(app.ErrInvalidInput),
	httpx.NotFoundRule(app.ErrNotFound),
	{Err: app.ErrEmailTaken, Status: http.StatusConflict, Code: "EMAIL_TAKEN"},
	{Err: app.ErrInvalidCredentials, Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS"},
	{Err: app.ErrUnauthorized, Status: http.StatusUnauthorized, Code: "UNAUTHENTICATED"},
	{Err: app.ErrInvalidToken, Status: http.StatusBadRequest, Code: "INVALID_TOKEN"},
}

const forgotMessage = "If an account with that email exists, a password reset link has been sent."

type Handler struct {
	svc *app.Service
	mw  *Middleware
	rdb *redis.Client
	log *slog.Logger
}

// NewHandler wires the account routes. rdb backs the login rate limiter
// and may be nil.
func NewHandler(svc *app.Service, mw *Middleware, rdb *redis.Client, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, mw: mw, rdb: rdb, log: log}
}

func (h *Handler) limit(scope string) gin.HandlerFunc {
	return httpx.RateLimiter(h.rdb, httpx.RateLimit{Scope: scope, Limit: 5, Period: time.Minute}, h.log)
}

func (h *Handler) Register(r gin.IRouter) {
	a := r.Group("/auth")
	a.POST("/register", h.limit("register"), h.register)
	a.POST("/login", h.limit("login"), h.login)
	a.POST("/logout", h.logout)
	a.POST("/forgot-password", h.limit("forgot"), h.forgot)
	a.POST("/reset-password", h.limit("reset"), h.reset)

	authed := r.Group("", h.mw.RequireAuth())
	authed.GET("/auth/me", h.me)
	authed.PUT("/auth/password", h.updatePassword)
	authed.GET("/profile", h.profile)
	authed.PUT("/profile", h.updateProfile)
}

func (h *Handler) register(c *gin.Context) {
	var in app.RegisterInput
	if err := c.ShouldBind(&in); err != nil {
		httpx.BadRequest(c, "malformed registration form")
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "message": "Registration successful!"})
}

func (h *Handler) login(c *gin.Context) {
	var in app.LoginInput
	if err := c.ShouldBind(&in); err != nil {
		httpx.BadRequest(c, "malformed login form")
		return
	}
	in.GuestID = httpx.GuestID(c)

	sess, err := h.svc.Login(c.Request.Context(), in)
	if err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	h.mw.StartSession(c, sess)
	c.JSON(http.StatusOK, sess)
}

func (h *Handler) logout(c *gin.Context) {
	h.mw.EndSession(c)
	c.Status(http.StatusNoContent)
}

func (h *Handler) forgot(c *gin.Context) {
	var in struct {
		Email string `json:"email" form:"email" binding:"required"`
	}
	if err := c.ShouldBind(&in); err != nil {
		httpx.BadRequest(c, "email is required")
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), in.Email); err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": forgotMessage})
}

type resetRequest struct {
	Token           string `json:"token" form:"token"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

func (h *Handler) reset(c *gin.Context) {
	var in resetRequest
	if err := c.ShouldBind(&in); err != nil {
		httpx.BadRequest(c, "malformed reset form")
		return
	}
	if err := h.svc.ResetPassword(c.Request.Context(), in.Token, in.Password, in.ConfirmPassword); err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully."})
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": httpx.UserID(c), "email": httpx.UserEmail(c)})
}

func (h *Handler) updatePassword(c *gin.Context) {
	var in struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.ShouldBind(&in); err != nil {
		httpx.BadRequest(c, "malformed password form")
		return
	}
	if err := h.svc.UpdatePassword(c.Request.Context(), httpx.UserID(c), in.Password); err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully!"})
}

func (h *Handler) profile(c *gin.Context) {
	p, err := h.svc.Profile(c.Request.Context(), httpx.UserID(c))
	if err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var in app.ProfileUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		httpx.BadRequest(c, "malformed profile")
		return
	}
	p, err := h.svc.UpdateProfile(c.Request.Context(), httpx.UserID(c), in)
	if err != nil {
		httpx.Error(c, err, Rules...)
		return
	}
	c.JSON(http.StatusOK, p)
}
