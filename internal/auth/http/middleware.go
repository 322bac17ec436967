package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/app"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "ja_session"
	GuestCookie   = "ja_guest"

	guestMaxAge = 60 * 60 * 24 * 365
)

// Middleware resolves who is making the request.
type Middleware struct {
	svc    *app.Service
	secure bool
}

func NewMiddleware(svc *app.Service, secureCookies bool) *Middleware {
	return &Middleware{svc: svc, secure: secureCookies}
}

func bearer(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if t := strings.TrimPrefix(h, "Bearer "); t != h {
		return strings.TrimSpace(t)
	}
	if t, err := c.Cookie(SessionCookie); err == nil {
		return t
	}
	return ""
}

// OptionalAuth marks the request as signed in when it carries a valid
// session token and otherwise lets it through unchanged.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := bearer(c); raw != "" {
			if claims, err := m.svc.Authenticate(raw); err == nil {
				httpx.SetUser(c, claims.Subject, claims.Email)
			}
		}
		c.Next()
	}
}

// Guest gives every visitor a stable anonymous id kept in a cookie, used
// to key carts and wishlists before sign-in.
func (m *Middleware) Guest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(GuestCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(GuestCookie, id, guestMaxAge, "/", "", m.secure, true)
		}
		httpx.SetGuest(c, id)
		c.Next()
	}
}

// RequireAuth rejects API requests without a valid session.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpx.UserID(c) == "" {
			raw := bearer(c)
			claims, err := m.svc.Authenticate(raw)
			if err != nil {
				httpx.Fail(c, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
				return
			}
			httpx.SetUser(c, claims.Subject, claims.Email)
		}
		c.Next()
	}
}

// RequirePage sends anonymous visitors of a page to the login form.
func (m *Middleware) RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpx.UserID(c) == "" {
			if claims, err := m.svc.Authenticate(bearer(c)); err == nil {
				httpx.SetUser(c, claims.Subject, claims.Email)
				c.Next()
				return
			}
			c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// StartSession stores the session token in an HTTP-only cookie.
func (m *Middleware) StartSession(c *gin.Context, sess app.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, sess.Token, maxAge, "/", "", m.secure, true)
	httpx.SetUser(c, sess.User.ID, sess.User.Email)
}

func (m *Middleware) EndSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", m.secure, true)
}
