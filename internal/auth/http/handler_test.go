package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwikikusuma/ja-fashion/internal/auth/app"
	"github.com/dwikikusuma/ja-fashion/internal/auth/infra/mailer"
	"github.com/dwikikusuma/ja-fashion/internal/auth/infra/memory"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/dwikikusuma/ja-fashion/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordedMerge struct{ guest, user string }

func newRouter(t *testing.T) (*gin.Engine, *[]recordedMerge) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := app.NewTokens("test-secret", 0)
	require.NoError(t, err)
	var merged []recordedMerge
	svc := app.NewService(memory.NewStore(), tokens, mailer.NewLogMailer(logger.Discard()), app.Options{
		BcryptCost: bcrypt.MinCost,
		Log:        logger.Discard(),
		Mergers: []app.GuestMerger{app.GuestMergerFunc(func(_ context.Context, guest, user string) error {
			merged = append(merged, recordedMerge{guest, user})
			return nil
		})},
	})
	mw := NewMiddleware(svc, false)

	r := gin.New()
	api := r.Group("/api", mw.OptionalAuth(), mw.Guest())
	NewHandler(svc, mw, nil, logger.Discard()).Register(api)
	api.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": httpx.OwnerID(c), "user": httpx.UserID(c)})
	})
	return r, &merged
}

func do(r *gin.Engine, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

const registration = `{"email":"sana@example.com","password":"secret1","confirmPassword":"secret1","firstName":"Sana","agreeToTerms":true}`

func TestGuestCookieIsIssuedOnce(t *testing.T) {
	r, _ := newRouter(t)

	rec := do(r, http.MethodGet, "/api/whoami", "")
	guest := cookie(rec, GuestCookie)
	require.NotNil(t, guest)
	assert.True(t, guest.HttpOnly)
	assert.Contains(t, rec.Body.String(), guest.Value)

	rec = do(r, http.MethodGet, "/api/whoami", "", guest)
	assert.Nil(t, cookie(rec, GuestCookie))
	assert.Contains(t, rec.Body.String(), guest.Value)
}

func TestRegisterLoginSession(t *testing.T) {
	r, merged := newRouter(t)

	rec := do(r, http.MethodPost, "/api/auth/register", registration)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret1")

	rec = do(r, http.MethodPost, "/api/auth/register", registration)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(r, http.MethodPost, "/api/auth/login", `{"email":"sana@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	guest := &http.Cookie{Name: GuestCookie, Value: "6f1c2a8e-3b1d-4c59-9d0e-3e5a1f7b2c44"}
	rec = do(r, http.MethodPost, "/api/auth/login", `{"email":"sana@example.com","password":"secret1"}`, guest)
	require.Equal(t, http.StatusOK, rec.Code)
	session := cookie(rec, SessionCookie)
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, session.Value, body.Token)
	assert.Equal(t, []recordedMerge{{guest.Value, body.User.ID}}, *merged)

	rec = do(r, http.MethodGet, "/api/whoami", "", session, guest)
	assert.Contains(t, rec.Body.String(), `"owner":"`+body.User.ID+`"`)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sana@example.com")

	rec = do(r, http.MethodPost, "/api/auth/logout", "", session)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	cleared := cookie(rec, SessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestProfileRequiresAuth(t *testing.T) {
	r, _ := newRouter(t)

	rec := do(r, http.MethodGet, "/api/profile", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/auth/register", registration).Code)
	session := cookie(do(r, http.MethodPost, "/api/auth/login", `{"email":"sana@example.com","password":"secret1"}`), SessionCookie)
	require.NotNil(t, session)

	rec = do(r, http.MethodGet, "/api/profile", "", session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Sana"`)

	rec = do(r, http.MethodPut, "/api/profile", `{"address":"Hyderabad","preferences":{"newsletter":true}}`, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"address":"Hyderabad"`)
	assert.Contains(t, rec.Body.String(), `"newsletter":true`)

	rec = do(r, http.MethodPut, "/api/auth/password", `{"password":"abc"}`, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	r, _ := newRouter(t)

	rec := do(r, http.MethodPost, "/api/auth/forgot-password", `{"email":"ghost@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), forgotMessage)

	rec = do(r, http.MethodPost, "/api/auth/reset-password", `{"token":"bogus","password":"secret9","confirmPassword":"secret9"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
