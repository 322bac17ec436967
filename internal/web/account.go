package web

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	authapp "github.com/dwikikusuma/ja-fashion/internal/auth/app"
	authdomain "github.com/dwikikusuma/ja-fashion/internal/auth/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// safeNext keeps redirects on this site. Browsers read "//host" and "/\host"
// as another origin.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || len(next) > 1 && (next[1] == '/' || next[1] == '\\') {
		return "/"
	}
	return next
}

func (h *Handler) loginForm(c *gin.Context) {
	if httpx.UserID(c) != "" {
		h.redirect(c, "/profile")
		return
	}
	h.render(c, http.StatusOK, "login", "Login", gin.H{"Next": c.Query("next")})
}

func (h *Handler) loginError(c *gin.Context, status int, msg string) {
	page := h.page(c, "Login", gin.H{"Next": c.PostForm("next")})
	page.Error = msg
	c.HTML(status, "login", page)
}

func (h *Handler) loginSubmit(c *gin.Context) {
	var in authapp.LoginInput
	_ = c.ShouldBind(&in)
	in.GuestID = httpx.GuestID(c)

	sess, err := h.Auth.Login(c.Request.Context(), in)
	if errors.Is(err, authapp.ErrInvalidCredentials) {
		h.loginError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Sessions.StartSession(c, sess)
	h.redirect(c, safeNext(c.PostForm("next")))
}

func (h *Handler) registerSubmit(c *gin.Context) {
	var in authapp.RegisterInput
	_ = c.ShouldBind(&in)

	_, err := h.Auth.Register(c.Request.Context(), in)
	switch {
	case errors.Is(err, authapp.ErrInvalidInput):
		h.loginError(c, http.StatusUnprocessableEntity, capitalize(strings.TrimPrefix(err.Error(), authapp.ErrInvalidInput.Error()+": ")))
		return
	case errors.Is(err, authapp.ErrEmailTaken):
		h.loginError(c, http.StatusConflict, "An account with this email already exists.")
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	sess, err := h.Auth.Login(c.Request.Context(), authapp.LoginInput{Email: in.Email, Password: in.Password, GuestID: httpx.GuestID(c)})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Sessions.StartSession(c, sess)
	h.redirect(c, "/profile?flash="+url.QueryEscape("Registration successful!"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func (h *Handler) logout(c *gin.Context) {
	h.Sessions.EndSession(c)
	h.redirect(c, "/login?flash="+url.QueryEscape("You have been logged out."))
}

func (h *Handler) forgotSubmit(c *gin.Context) {
	if err := h.Auth.ForgotPassword(c.Request.Context(), c.PostForm("email")); err != nil && !errors.Is(err, authapp.ErrInvalidInput) {
		h.fail(c, err)
		return
	}
	h.redirect(c, "/login?flash="+url.QueryEscape("If an account with that email exists, a password reset link has been sent."))
}

func (h *Handler) resetForm(c *gin.Context) {
	h.render(c, http.StatusOK, "reset-password", "Reset Password", gin.H{"Token": c.Query("token")})
}

func (h *Handler) resetSubmit(c *gin.Context) {
	token := c.PostForm("token")
	err := h.Auth.ResetPassword(c.Request.Context(), token, c.PostForm("password"), c.PostForm("confirmPassword"))
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, authapp.ErrInvalidToken):
			msg = "This reset link is invalid or has expired."
		case errors.Is(err, authapp.ErrInvalidInput):
			msg = capitalize(strings.TrimPrefix(err.Error(), authapp.ErrInvalidInput.Error()+": "))
		default:
			h.fail(c, err)
			return
		}
		page := h.page(c, "Reset Password", gin.H{"Token": token})
		page.Error = msg
		c.HTML(http.StatusUnprocessableEntity, "reset-password", page)
		return
	}
	h.redirect(c, "/login?flash="+url.QueryEscape("Password has been reset successfully."))
}

func (h *Handler) profile(c *gin.Context) {
	ctx := c.Request.Context()
	userID := httpx.UserID(c)

	p, err := h.Auth.Profile(ctx, userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	orders, err := h.Orders.Recent(ctx, userID, 3)
	if err != nil {
		h.fail(c, err)
		return
	}
	saved, err := h.Wishlist.Recent(ctx, userID, 3)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "profile", "Profile", gin.H{"Profile": p, "Orders": orders, "Wishlist": saved})
}

func (h *Handler) profileSubmit(c *gin.Context) {
	str := func(key string) *string {
		v, ok := c.GetPostForm(key)
		if !ok {
			return nil
		}
		return &v
	}
	upd := authapp.ProfileUpdate{
		FirstName: str("firstName"),
		LastName:  str("lastName"),
		Phone:     str("phone"),
		Address:   str("address"),
		Preferences: &authdomain.Preferences{
			Newsletter: c.PostForm("newsletter") == "true",
			Promotions: c.PostForm("promotions") == "true",
		},
	}
	if _, err := h.Auth.UpdateProfile(c.Request.Context(), httpx.UserID(c), upd); err != nil {
		h.fail(c, err)
		return
	}
	h.redirect(c, "/profile?flash="+url.QueryEscape("Profile updated."))
}

func (h *Handler) passwordSubmit(c *gin.Context) {
	err := h.Auth.UpdatePassword(c.Request.Context(), httpx.UserID(c), c.PostForm("password"))
	if errors.Is(err, authapp.ErrInvalidInput) {
		h.redirect(c, "/profile?flash="+url.QueryEscape("Password must be at least 6 characters."))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.redirect(c, "/profile?flash="+url.QueryEscape("Password updated successfully!"))
}
