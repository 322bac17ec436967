package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	authapp "github.com/dwikikusuma/ja-fashion/internal/auth/app"
	authhttp "github.com/dwikikusuma/ja-fashion/internal/auth/http"
	"github.com/dwikikusuma/ja-fashion/internal/auth/infra/mailer"
	authmem "github.com/dwikikusuma/ja-fashion/internal/auth/infra/memory"
	cartapp "github.com/dwikikusuma/ja-fashion/internal/cart/app"
	cartadapter "github.com/dwikikusuma/ja-fashion/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/ja-fashion/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/ja-fashion/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/ja-fashion/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/ja-fashion/internal/order/app"
	ordermem "github.com/dwikikusuma/ja-fashion/internal/order/infra/memory"
	wishlistapp "github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	wishlistadapter "github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/adapter"
	wishlistmem "github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/memory"
	"github.com/dwikikusuma/ja-fashion/pkg/config"
	"github.com/dwikikusuma/ja-fashion/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newEngine(t *testing.T, opts ...func(*Deps)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.Discard()

	cat := catalogmem.New(catalogmem.Seed())
	catalog := catalogapp.NewService(cat, cat.Cities(), cat)
	carts := cartapp.NewService(cartmem.NewCartRepo(), cartadapter.NewCatalogSource(catalog))
	wishlist := wishlistapp.NewService(wishlistmem.NewWishlistRepo(), wishlistadapter.NewCatalogSource(catalog))
	orders := orderapp.NewService(ordermem.NewOrderRepo())
	reader := checkoutadapter.NewCatalogServiceReader(catalog)
	checkout := checkoutapp.NewService(checkoutapp.Deps{
		Cart:     checkoutadapter.NewCartServiceReader(carts),
		Catalog:  reader,
		Shipping: reader,
		Orders:   checkoutadapter.NewOrderServiceWriter(orders),
		Settings: checkoutadapter.Settings{Store: config.NewStaticStorefront(config.DefaultStorefront()), WhatsAppNumber: "923051070920"},
		Log:      log,
	}, 0)

	tokens, err := authapp.NewTokens("test-secret", 0)
	require.NoError(t, err)
	auth := authapp.NewService(authmem.NewStore(), tokens, mailer.NewLogMailer(log), authapp.Options{BcryptCost: bcrypt.MinCost, Log: log})
	mw := authhttp.NewMiddleware(auth, false)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(mw.OptionalAuth(), mw.Guest())
	deps := Deps{
		Catalog: catalog, Cart: carts, Wishlist: wishlist, Orders: orders,
		Checkout: checkout, Auth: auth, Sessions: mw, Log: log,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	h := NewHandler(deps)
	h.Register(r)
	r.NoRoute(h.NoRoute)
	return r
}

// browser keeps cookies between requests.
type browser struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, opts ...func(*Deps)) *browser {
	return &browser{t: t, r: newEngine(t, opts...), cookies: map[string]*http.Cookie{}}
}

func withStripe(d *Deps) { d.StripeKey = "pk_test_123" }

func withChat(d *Deps) { d.ChatEnabled = true }

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	b.r.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(b.cookies, ck.Name)
			continue
		}
		b.cookies[ck.Name] = ck
	}
	return rec
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func TestRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	for _, name := range []string{"home", "catalog", "product", "traditional-wear", "portfolio", "cart", "checkout",
		"payment", "order-success", "orders", "wishlist", "profile", "login", "reset-password", "info", "not-found", "error"} {
		assert.True(t, r.Has(name), name)
	}
}

func TestPublicPages(t *testing.T) {
	b := newBrowser(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Classic Ajrak Shawl"},
		{"/", "The ajrak shawl is beautiful"},
		{"/catalog?category=Kurtas&sort=price-low", "Ajrak Print Kurta"},
		{"/catalog?q=indigo", "Indigo Dupatta"},
		{"/product/classic-ajrak-shawl", "Rs 2,500.00"},
		{"/traditional-wear", "Sindhi Cape"},
		{"/portfolio", "Portfolio"},
		{"/about", "About JA Fashion"},
		{"/customer-service/faq", "Frequently Asked Questions"},
		{"/customer-service/shipping", "Shipping Information"},
		{"/login", "Create Account"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := b.get(tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, `href="https://wa.me/923051070920"`, "floating WhatsApp link")
		})
	}
}

func TestCatalogFilterExcludes(t *testing.T) {
	rec := newBrowser(t).get("/catalog?category=Shawls")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<h3>Ajrak Print Kurta</h3>")
}

func TestNotFound(t *testing.T) {
	b := newBrowser(t)
	assert.Equal(t, http.StatusNotFound, b.get("/product/nope").Code)
	assert.Equal(t, http.StatusNotFound, b.get("/nowhere").Code)

	rec := b.get("/api/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}

func TestCartToOrderFlow(t *testing.T) {
	b := newBrowser(t)

	rec := b.post("/cart/add", url.Values{"productId": {"prod-ajrak-shawl"}, "quantity": {"2"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cart", rec.Header().Get("Location"))

	rec = b.get("/cart?promo=WELCOME10&city=Karachi")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cart (2)")
	assert.Contains(t, body, "Rs 5,000.00")
	assert.Contains(t, body, "WELCOME10 - 10% discount applied to your order.")

	rec = b.post("/cart/add", url.Values{"productId": {"prod-black-kurta"}})
	assert.Contains(t, rec.Header().Get("Location"), "out+of+stock")

	rec = b.post("/checkout", url.Values{"name": {"Sana"}, "city": {"Karachi"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in all required fields.")

	rec = b.post("/checkout", url.Values{
		"name": {"Sana"}, "phone": {"03001234567"}, "email": {"sana@example.com"},
		"address": {"12 Clifton"}, "city": {"Karachi"}, "postalCode": {"75600"}, "promoCode": {"WELCOME10"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Thank you for your order!")
	assert.Contains(t, body, "Confirm on WhatsApp")
	assert.Contains(t, body, "https://wa.me/923051070920?text=")

	rec = b.get("/cart")
	assert.Contains(t, rec.Body.String(), "Your cart is empty.")
}

func TestWishlistToggle(t *testing.T) {
	b := newBrowser(t)

	rec := b.post("/wishlist/toggle", url.Values{"productId": {"prod-black-kurta"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = b.get("/wishlist")
	assert.Contains(t, rec.Body.String(), "Embroidered Black Kurta")
	assert.Contains(t, rec.Body.String(), "Wishlist (1)")

	b.post("/wishlist/toggle", url.Values{"productId": {"prod-black-kurta"}})
	assert.Contains(t, b.get("/wishlist").Body.String(), "Your wishlist is empty.")
}

func TestAccountPages(t *testing.T) {
	b := newBrowser(t)

	rec := b.get("/orders")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Forders", rec.Header().Get("Location"))

	b.post("/cart/add", url.Values{"productId": {"prod-indigo-dupatta"}})

	rec = b.post("/register", url.Values{
		"email": {"sana@example.com"}, "password": {"secret1"}, "confirmPassword": {"secret2"}, "agreeToTerms": {"true"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passwords do not match.")

	rec = b.post("/register", url.Values{
		"email": {"sana@example.com"}, "password": {"secret1"}, "confirmPassword": {"secret1"},
		"firstName": {"Sana"}, "agreeToTerms": {"true"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Contains(t, b.cookies, authhttp.SessionCookie)

	rec = b.get("/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration successful!")
	assert.Contains(t, rec.Body.String(), "sana@example.com")

	rec = b.post("/profile", url.Values{"address": {"Hyderabad"}, "newsletter": {"true"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, b.get("/profile").Body.String(), "Hyderabad")

	assert.Equal(t, http.StatusOK, b.get("/orders").Code)

	b.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, b.get("/profile").Code)

	rec = b.post("/login", url.Values{"email": {"sana@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")

	rec = b.post("/login", url.Values{"email": {"sana@example.com"}, "password": {"secret1"}, "next": {"//evil.example"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCheckoutQuotesChosenCity(t *testing.T) {
	b := newBrowser(t)
	b.post("/cart/add", url.Values{"productId": {"prod-ajrak-shawl"}})

	rec := b.get("/checkout")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<dt>Shipping</dt><dd>Rs 300.00</dd>")
	assert.Contains(t, rec.Body.String(), "<strong>Rs 2,800.00</strong>")

	rec = b.get("/checkout?city=Karachi")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<dt>Shipping</dt><dd>Rs 200.00</dd>")
	assert.Contains(t, body, "<strong>Rs 2,700.00</strong>")
	assert.Contains(t, body, `<option value="Karachi" selected>Karachi</option>`)
}

func TestCheckoutErrorKeepsPromoAndCity(t *testing.T) {
	b := newBrowser(t)
	b.post("/cart/add", url.Values{"productId": {"prod-ajrak-shawl"}})

	rec := b.post("/checkout", url.Values{"name": {"Sana"}, "city": {"Karachi"}, "promoCode": {"WELCOME10"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<dt>Promo (WELCOME10)</dt><dd>-Rs 250.00</dd>")
	assert.Contains(t, body, "<dt>Shipping</dt><dd>Rs 200.00</dd>")
	assert.Contains(t, body, "<strong>Rs 2,450.00</strong>")
	assert.Contains(t, body, `name="promoCode" value="WELCOME10"`)
}

func TestCardPaymentPage(t *testing.T) {
	t.Run("without stripe", func(t *testing.T) {
		b := newBrowser(t)
		b.post("/cart/add", url.Values{"productId": {"prod-ajrak-shawl"}})

		assert.NotContains(t, b.get("/checkout").Body.String(), "Pay by Card")
		rec := b.get("/checkout/pay")
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/checkout", rec.Header().Get("Location"))
	})

	t.Run("with stripe", func(t *testing.T) {
		b := newBrowser(t, withStripe)

		rec := b.get("/checkout/pay")
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"), "empty cart")

		b.post("/cart/add", url.Values{"productId": {"prod-ajrak-shawl"}})
		assert.Contains(t, b.get("/checkout?city=Karachi").Body.String(), "/checkout/pay?city=Karachi")

		rec = b.get("/checkout/pay?city=Karachi")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "https://js.stripe.com/v3/")
		assert.Contains(t, body, "pk_test_123")
		assert.Contains(t, body, "/api/checkout/pay")
		assert.Contains(t, body, "Pay Rs 2,700.00")
	})
}

func TestChatWidget(t *testing.T) {
	body := newBrowser(t).get("/").Body.String()
	assert.NotContains(t, body, "chat-widget")

	body = newBrowser(t, withChat).get("/").Body.String()
	assert.Contains(t, body, `class="chat-widget"`)
	assert.Contains(t, body, "/api/chat")
	assert.Contains(t, body, "Hello! How can I help you with your shopping today?")
}

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                  "/",
		"/orders":           "/orders",
		"/catalog?q=ajrak":  "/catalog?q=ajrak",
		"//evil.example":    "/",
		`/\evil.example`:    "/",
		"https://evil.test": "/",
		"orders":            "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeNext(in), in)
	}
}

func TestWishlistToggleIgnoresForeignReferer(t *testing.T) {
	b := newBrowser(t)

	for ref, want := range map[string]string{
		"http://shop.test/catalog?q=kurta": "/catalog?q=kurta",
		"http://shop.test//evil.example":   "/",
		`http://shop.test/\evil.example`:   "/",
		"":                                 "/wishlist",
	} {
		req := httptest.NewRequest(http.MethodPost, "/wishlist/toggle", strings.NewReader("productId=prod-ajrak-shawl"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if ref != "" {
			req.Header.Set("Referer", ref)
		}
		rec := b.do(req)
		require.Equal(t, http.StatusSeeOther, rec.Code, ref)
		assert.Equal(t, want, rec.Header().Get("Location"), ref)
	}
}
