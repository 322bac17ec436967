package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	authapp "github.com/dwikikusuma/ja-fashion/internal/auth/app"
	authhttp "github.com/dwikikusuma/ja-fashion/internal/auth/http"
	cartapp "github.com/dwikikusuma/ja-fashion/internal/cart/app"
	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	cataloghttp "github.com/dwikikusuma/ja-fashion/internal/catalog/http"
	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/ja-fashion/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/ja-fashion/internal/order/app"
	wishlistapp "github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Catalog  *catalogapp.Service
	Cart     *cartapp.Service
	Wishlist *wishlistapp.Service
	Orders   *orderapp.Service
	Checkout *checkoutapp.Service
	Auth     *authapp.Service
	Sessions *authhttp.Middleware
	Log      *slog.Logger

	// StripeKey is the publishable key; card payment is offered when set.
	StripeKey string
	// ChatEnabled renders the assistant widget on every page.
	ChatEnabled bool
}

type Handler struct {
	Deps
}

func NewHandler(d Deps) *Handler {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return &Handler{Deps: d}
}

// Page is the data every template receives.
type Page struct {
	Title         string
	User          string
	CartCount     int
	WishlistCount int
	WhatsAppURL   string
	Flash         string
	Error         string
	ChatEnabled   bool
	Data          gin.H
}

// Register mounts the pages. The engine must already run the auth and
// guest middlewares so every request has an owner.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.home)
	r.GET("/catalog", h.catalog)
	r.GET("/product/:slug", h.product)
	r.GET("/traditional-wear", h.traditional)
	r.GET("/portfolio", h.portfolio)

	r.GET("/cart", h.cart)
	r.POST("/cart/add", h.cartAdd)
	r.POST("/cart/update", h.cartUpdate)
	r.POST("/cart/remove", h.cartRemove)
	r.POST("/cart/clear", h.cartClear)

	r.GET("/wishlist", h.wishlist)
	r.POST("/wishlist/toggle", h.wishlistToggle)

	r.GET("/checkout", h.checkoutForm)
	r.POST("/checkout", h.checkoutSubmit)
	r.GET("/checkout/pay", h.paymentForm)
	r.GET("/order-success", h.orderSuccess)

	r.GET("/login", h.loginForm)
	r.POST("/login", h.loginSubmit)
	r.POST("/register", h.registerSubmit)
	r.POST("/logout", h.logout)
	r.POST("/forgot-password", h.forgotSubmit)
	r.GET("/reset-password", h.resetForm)
	r.POST("/reset-password", h.resetSubmit)

	private := r.Group("", h.Sessions.RequirePage())
	private.GET("/orders", h.orders)
	private.GET("/profile", h.profile)
	private.POST("/profile", h.profileSubmit)
	private.POST("/profile/password", h.passwordSubmit)

	for path, p := range infoPages {
		r.GET(path, h.info(p))
	}
}

// NoRoute renders the not-found page for browsers and JSON for API paths.
func (h *Handler) NoRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		httpx.NotFound(c, "route not found")
		return
	}
	h.render(c, http.StatusNotFound, "not-found", "Not Found", nil)
}

func (h *Handler) page(c *gin.Context, title string, data gin.H) Page {
	ctx := c.Request.Context()
	owner := httpx.OwnerID(c)

	p := Page{
		Title:       title,
		User:        httpx.UserEmail(c),
		WhatsAppURL: h.Checkout.ContactURL(),
		Flash:       c.Query("flash"),
		ChatEnabled: h.ChatEnabled,
		Data:        data,
	}
	if owner != "" {
		if cart, err := h.Cart.GetCart(ctx, owner); err == nil {
			p.CartCount = cart.TotalItems()
		}
		if n, err := h.Wishlist.Count(ctx, owner); err == nil {
			p.WishlistCount = n
		}
	}
	return p
}

func (h *Handler) render(c *gin.Context, status int, name, title string, data gin.H) {
	c.HTML(status, name, h.page(c, title, data))
}

func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, orderapp.ErrNotFound) {
		h.render(c, http.StatusNotFound, "not-found", "Not Found", nil)
		return
	}
	h.Log.Error("page failed", slog.String("path", c.Request.URL.Path), slog.Any("err", err))
	h.render(c, http.StatusInternalServerError, "error", "Error", nil)
}

func (h *Handler) redirect(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
}

func (h *Handler) home(c *gin.Context) {
	ctx := c.Request.Context()
	featured, err := h.Catalog.FeaturedProducts(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	fresh, err := h.Catalog.NewProducts(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	testimonials, err := h.Catalog.Testimonials(ctx)
	if err != nil {
		h.Log.Warn("testimonials unavailable", slog.Any("err", err))
	}
	h.render(c, http.StatusOK, "home", "", gin.H{
		"Featured":     featured,
		"New":          fresh,
		"Testimonials": testimonials,
	})
}

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{catalogdomain.SortNewest, "Newest"},
	{catalogdomain.SortOldest, "Oldest"},
	{catalogdomain.SortPriceLow, "Price: Low to High"},
	{catalogdomain.SortPriceHigh, "Price: High to Low"},
	{catalogdomain.SortNameAZ, "Name: A to Z"},
	{catalogdomain.SortNameZA, "Name: Z to A"},
	{catalogdomain.SortPopular, "Most Popular"},
}

func categories(products []catalogdomain.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

func (h *Handler) catalog(c *gin.Context) {
	ctx := c.Request.Context()
	f := cataloghttp.ParseFilter(c)

	products, err := h.Catalog.Browse(ctx, f)
	if err != nil {
		h.fail(c, err)
		return
	}
	all, err := h.Catalog.AllProducts(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}
	colors, _ := h.Catalog.UniqueColors(ctx)
	sizes, _ := h.Catalog.UniqueSizes(ctx)

	h.render(c, http.StatusOK, "catalog", "Catalog", gin.H{
		"Products":   products,
		"Filter":     f,
		"Categories": categories(all),
		"Colors":     colors,
		"Sizes":      sizes,
		"Sorts":      sortOptions,
		"MinPrice":   c.Query("min_price"),
		"MaxPrice":   c.Query("max_price"),
	})
}

func (h *Handler) product(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.Catalog.ProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}

	var related []catalogdomain.Product
	if same, err := h.Catalog.ProductsByCategory(ctx, p.Category); err == nil {
		for _, r := range same {
			if r.ID != p.ID && len(related) < 4 {
				related = append(related, r)
			}
		}
	}
	saved, _ := h.Wishlist.Contains(ctx, httpx.OwnerID(c), p.ID)

	h.render(c, http.StatusOK, "product", p.Title, gin.H{"Product": p, "Related": related, "Saved": saved})
}

func (h *Handler) traditional(c *gin.Context) {
	products, err := h.Catalog.TraditionalWear(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "traditional-wear", "Traditional Wear", gin.H{"Products": products})
}

func (h *Handler) portfolio(c *gin.Context) {
	items, err := h.Catalog.Portfolio(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "portfolio", "Portfolio", gin.H{"Items": items})
}

func (h *Handler) cities(ctx context.Context) []catalogdomain.City {
	cities, err := h.Catalog.AllCities(ctx)
	if err != nil {
		h.Log.Warn("cities unavailable", slog.Any("err", err))
	}
	return cities
}

// quote prices the cart for display. An empty cart yields an empty quote
// and an unknown promo is reported and dropped.
func (h *Handler) quote(c *gin.Context, promo, city string) (checkoutdomain.Quote, string, error) {
	in := checkoutapp.QuoteInput{OwnerID: httpx.OwnerID(c), PromoCode: promo, City: city}
	q, err := h.Checkout.Quote(c.Request.Context(), in)
	var msg string
	if errors.Is(err, checkoutapp.ErrInvalidPromo) {
		msg = "Please enter a valid promo code."
		in.PromoCode = ""
		q, err = h.Checkout.Quote(c.Request.Context(), in)
	}
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		return checkoutdomain.Quote{}, msg, nil
	}
	if err == nil && q.Summary.PromoCode != "" {
		if p, _ := h.Checkout.LookupPromo(q.Summary.PromoCode); p != nil {
			msg = p.Code + " - " + p.Description
		}
	}
	return q, msg, err
}

func (h *Handler) cart(c *gin.Context) {
	promo, city := c.Query("promo"), c.Query("city")
	q, msg, err := h.quote(c, promo, city)
	if err != nil && !errors.Is(err, checkoutapp.ErrProductUnavailable) {
		h.fail(c, err)
		return
	}
	page := h.page(c, "Shopping Cart", gin.H{
		"Quote":        q,
		"Promo":        promo,
		"City":         city,
		"Cities":       h.cities(c.Request.Context()),
		"PromoMessage": msg,
	})
	if err != nil {
		page.Error = "Some items in your cart are no longer available. Please remove them to continue."
	}
	c.HTML(http.StatusOK, "cart", page)
}

type productForm struct {
	ProductID string `form:"productId" binding:"required"`
	Quantity  int    `form:"quantity"`
}

func back(c *gin.Context, fallback string) string {
	if ref := c.Request.Referer(); ref != "" {
		if i := strings.Index(ref, "://"); i >= 0 {
			if j := strings.Index(ref[i+3:], "/"); j >= 0 {
				return safeNext(ref[i+3+j:])
			}
		}
	}
	return fallback
}

func (h *Handler) cartAdd(c *gin.Context) {
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		h.redirect(c, "/catalog")
		return
	}
	if f.Quantity < 1 {
		f.Quantity = 1
	}
	_, err := h.Cart.AddProduct(c.Request.Context(), httpx.OwnerID(c), f.ProductID, f.Quantity)
	switch {
	case errors.Is(err, cartapp.ErrOutOfStock):
		h.redirect(c, "/cart?flash="+url.QueryEscape("That product is out of stock."))
	case errors.Is(err, cartapp.ErrNotFound), errors.Is(err, cartapp.ErrInvalidInput):
		h.redirect(c, "/catalog")
	case err != nil:
		h.fail(c, err)
	default:
		h.redirect(c, "/cart")
	}
}

func (h *Handler) cartUpdate(c *gin.Context) {
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		h.redirect(c, "/cart")
		return
	}
	_, err := h.Cart.UpdateQuantity(c.Request.Context(), httpx.OwnerID(c), f.ProductID, f.Quantity)
	if err != nil && !errors.Is(err, cartapp.ErrNotFound) && !errors.Is(err, cartapp.ErrInvalidInput) {
		h.fail(c, err)
		return
	}
	h.redirect(c, "/cart")
}

func (h *Handler) cartRemove(c *gin.Context) {
	var f productForm
	if err := c.ShouldBind(&f); err == nil {
		if _, err := h.Cart.RemoveItem(c.Request.Context(), httpx.OwnerID(c), f.ProductID); err != nil &&
			!errors.Is(err, cartapp.ErrNotFound) && !errors.Is(err, cartapp.ErrInvalidInput) {
			h.fail(c, err)
			return
		}
	}
	h.redirect(c, "/cart")
}

func (h *Handler) cartClear(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context(), httpx.OwnerID(c)); err != nil {
		h.fail(c, err)
		return
	}
	h.redirect(c, "/cart")
}

func (h *Handler) wishlist(c *gin.Context) {
	items, err := h.Wishlist.List(c.Request.Context(), httpx.OwnerID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "wishlist", "Wishlist", gin.H{"Items": items})
}

func (h *Handler) wishlistToggle(c *gin.Context) {
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		h.redirect(c, "/wishlist")
		return
	}
	_, err := h.Wishlist.Toggle(c.Request.Context(), httpx.OwnerID(c), f.ProductID)
	if err != nil && !errors.Is(err, wishlistapp.ErrNotFound) && !errors.Is(err, wishlistapp.ErrInvalidInput) {
		h.fail(c, err)
		return
	}
	h.redirect(c, back(c, "/wishlist"))
}

// checkoutData quotes the cart for the city picked on the form so the
// summary shows the shipping that will be charged.
func (h *Handler) checkoutData(c *gin.Context) (gin.H, bool) {
	promo, city := c.Query("promo"), c.Query("city")
	q, msg, err := h.quote(c, promo, city)
	if err != nil || len(q.Lines) == 0 {
		return nil, false
	}
	addr := checkoutdomain.Address{Email: httpx.UserEmail(c), City: city}
	return gin.H{
		"Quote":        q,
		"Promo":        promo,
		"PromoMessage": msg,
		"Address":      addr,
		"Cities":       h.cities(c.Request.Context()),
		"CardPayment":  h.StripeKey != "",
	}, true
}

func (h *Handler) checkoutForm(c *gin.Context) {
	data, ok := h.checkoutData(c)
	if !ok {
		h.redirect(c, "/cart")
		return
	}
	h.render(c, http.StatusOK, "checkout", "Checkout", data)
}

// paymentForm is the card checkout: the page posts the address to the
// payment API and confirms the returned intent with Stripe.js.
func (h *Handler) paymentForm(c *gin.Context) {
	if h.StripeKey == "" {
		h.redirect(c, "/checkout")
		return
	}
	data, ok := h.checkoutData(c)
	if !ok {
		h.redirect(c, "/cart")
		return
	}
	data["StripeKey"] = h.StripeKey
	h.render(c, http.StatusOK, "payment", "Card Payment", data)
}

func (h *Handler) checkoutSubmit(c *gin.Context) {
	var f checkoutForm
	_ = c.ShouldBind(&f)

	placed, err := h.Checkout.PlaceOrder(c.Request.Context(), checkoutapp.PlaceOrderInput{
		OwnerID:   httpx.OwnerID(c),
		UserID:    httpx.UserID(c),
		Address:   f.Address,
		PromoCode: f.PromoCode,
	})
	if err != nil {
		h.checkoutError(c, f, err)
		return
	}

	order, err := h.Orders.Get(c.Request.Context(), placed.OrderID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "order-success", "Order Placed", gin.H{"Order": order, "ConfirmURL": placed.WhatsAppURL})
}

type checkoutForm struct {
	checkoutdomain.Address
	PromoCode string `form:"promoCode"`
}

func (h *Handler) checkoutError(c *gin.Context, f checkoutForm, err error) {
	var missing *checkoutdomain.MissingFieldsError
	var msg string
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		h.redirect(c, "/cart")
		return
	case errors.As(err, &missing):
		msg = "Please fill in all required fields."
	case errors.Is(err, checkoutapp.ErrInvalidPromo):
		msg = "Please enter a valid promo code."
	case errors.Is(err, checkoutapp.ErrProductUnavailable):
		msg = "Some items in your cart are no longer available."
	default:
		h.fail(c, err)
		return
	}

	q, promoMsg, _ := h.quote(c, f.PromoCode, f.City)
	page := h.page(c, "Checkout", gin.H{
		"Quote":        q,
		"Promo":        f.PromoCode,
		"PromoMessage": promoMsg,
		"Address":      f.Address,
		"Cities":       h.cities(c.Request.Context()),
		"CardPayment":  h.StripeKey != "",
	})
	if missing != nil {
		page.Data["Missing"] = missing.Fields
	}
	page.Error = msg
	c.HTML(http.StatusUnprocessableEntity, "checkout", page)
}

func (h *Handler) orderSuccess(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		h.redirect(c, "/")
		return
	}
	order, err := h.Orders.GetForUser(c.Request.Context(), id, httpx.UserID(c))
	if err != nil {
		if errors.Is(err, orderapp.ErrInvalidInput) {
			err = orderapp.ErrNotFound
		}
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "order-success", "Order #"+order.ID, gin.H{
		"Order":   order,
		"Payment": c.Query("redirect_status"),
	})
}

func (h *Handler) orders(c *gin.Context) {
	list, err := h.Orders.List(c.Request.Context(), httpx.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "orders", "My Orders", gin.H{"Orders": list})
}

