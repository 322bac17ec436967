package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	authapp "github.com/dwikikusuma/ja-fashion/internal/auth/app"
	authhttp "github.com/dwikikusuma/ja-fashion/internal/auth/http"
	"github.com/dwikikusuma/ja-fashion/internal/auth/infra/gormstore"
	"github.com/dwikikusuma/ja-fashion/internal/auth/infra/mailer"
	authmem "github.com/dwikikusuma/ja-fashion/internal/auth/infra/memory"

	cartapp "github.com/dwikikusuma/ja-fashion/internal/cart/app"
	carthttp "github.com/dwikikusuma/ja-fashion/internal/cart/http"
	cartadapter "github.com/dwikikusuma/ja-fashion/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/ja-fashion/internal/cart/infra/memory"
	cartpg "github.com/dwikikusuma/ja-fashion/internal/cart/infra/postgres"

	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	cataloghttp "github.com/dwikikusuma/ja-fashion/internal/catalog/http"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/infra/cache"
	catalogmem "github.com/dwikikusuma/ja-fashion/internal/catalog/infra/memory"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/infra/sanity"

	chatapp "github.com/dwikikusuma/ja-fashion/internal/chat/app"
	chathttp "github.com/dwikikusuma/ja-fashion/internal/chat/http"
	"github.com/dwikikusuma/ja-fashion/internal/chat/infra/gemini"
	"github.com/dwikikusuma/ja-fashion/internal/chat/infra/openai"

	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	checkouthttp "github.com/dwikikusuma/ja-fashion/internal/checkout/http"
	checkoutadapter "github.com/dwikikusuma/ja-fashion/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/ja-fashion/internal/order/app"
	orderhttp "github.com/dwikikusuma/ja-fashion/internal/order/http"
	ordermem "github.com/dwikikusuma/ja-fashion/internal/order/infra/memory"
	orderpg "github.com/dwikikusuma/ja-fashion/internal/order/infra/postgres"

	paymentapp "github.com/dwikikusuma/ja-fashion/internal/payment/app"
	paymenthttp "github.com/dwikikusuma/ja-fashion/internal/payment/http"
	"github.com/dwikikusuma/ja-fashion/internal/payment/infra/stripe"

	"github.com/dwikikusuma/ja-fashion/internal/web"

	wishlistapp "github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	wishlisthttp "github.com/dwikikusuma/ja-fashion/internal/wishlist/http"
	wishlistadapter "github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/adapter"
	wishlistmem "github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/memory"
	wishlistpg "github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/postgres"

	"github.com/dwikikusuma/ja-fashion/pkg/config"
	"github.com/dwikikusuma/ja-fashion/pkg/httpx"
	"github.com/dwikikusuma/ja-fashion/pkg/logger"
	"github.com/dwikikusuma/ja-fashion/pkg/postgres"
	"github.com/dwikikusuma/ja-fashion/pkg/redisx"
	"github.com/dwikikusuma/ja-fashion/pkg/shutdown"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := shutdown.WithSignals(parent)
	defer cancel()

	rdb := redisx.Connect(ctx, redisx.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}, log)
	if rdb != nil {
		defer rdb.Close()
	}

	var db *sql.DB
	if cfg.Store == "postgres" {
		var err error
		db, err = postgres.Open(postgres.Config{DSN: cfg.DatabaseURL})
		if err != nil {
			return err
		}
		defer db.Close()
		log.Info("store: postgres")
	} else {
		log.Warn("store: memory, data is lost on restart")
	}

	storefront, err := config.NewStorefrontStore(cfg.StorefrontFile, log)
	if err != nil {
		return fmt.Errorf("storefront settings: %w", err)
	}
	go func() {
		if err := storefront.Watch(ctx); err != nil {
			log.Warn("storefront watch stopped", slog.Any("err", err))
		}
	}()

	// Catalog
	catalogSvc, err := newCatalog(cfg, rdb, log)
	if err != nil {
		return err
	}

	// Cart, wishlist and orders
	var (
		cartRepo     cartapp.CartRepo
		wishlistRepo wishlistapp.WishlistRepo
		orderRepo    orderapp.OrderRepo
		authStore    authapp.Store
	)
	if db != nil {
		cartRepo = cartpg.NewCartRepo(db)
		wishlistRepo = wishlistpg.NewWishlistRepo(db)
		orderRepo = orderpg.NewOrderRepo(db)
		users, err := gormstore.Open(db)
		if err != nil {
			return err
		}
		authStore = users
	} else {
		cartRepo = cartmem.NewCartRepo()
		wishlistRepo = wishlistmem.NewWishlistRepo()
		orderRepo = ordermem.NewOrderRepo()
		authStore = authmem.NewStore()
	}

	cartSvc := cartapp.NewService(cartRepo, cartadapter.NewCatalogSource(catalogSvc))
	wishlistSvc := wishlistapp.NewService(wishlistRepo, wishlistadapter.NewCatalogSource(catalogSvc))
	orderSvc := orderapp.NewService(orderRepo)

	// Checkout (adapters)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(checkoutapp.Deps{
		Cart:     checkoutadapter.NewCartServiceReader(cartSvc),
		Catalog:  catalogReader,
		Shipping: catalogReader,
		Orders:   checkoutadapter.NewOrderServiceWriter(orderSvc),
		Settings: checkoutadapter.Settings{Store: storefront, WhatsAppNumber: cfg.WhatsAppNumber},
		Log:      log,
	}, 10)

	// Auth
	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.IsProd() {
			return errors.New("JWT_SECRET is required in production")
		}
		secret = uuid.NewString()
		log.Warn("JWT_SECRET not set, sessions will not survive a restart")
	}
	tokens, err := authapp.NewTokens(secret, authapp.SessionTTL)
	if err != nil {
		return err
	}
	authSvc := authapp.NewService(authStore, tokens, mailer.NewLogMailer(log), authapp.Options{
		BaseURL: cfg.PublicBaseURL,
		Log:     log,
		Mergers: []authapp.GuestMerger{
			authapp.GuestMergerFunc(func(ctx context.Context, guestID, userID string) error {
				_, err := cartSvc.Merge(ctx, guestID, userID)
				return err
			}),
			authapp.GuestMergerFunc(wishlistSvc.Merge),
		},
	})
	sessions := authhttp.NewMiddleware(authSvc, cfg.IsProd())

	// HTTP
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(httpx.RequestLogger(log), httpx.Recovery(log))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/readyz", func(c *gin.Context) {
		if db != nil {
			if err := db.PingContext(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	site := r.Group("", sessions.OptionalAuth(), sessions.Guest())

	api := site.Group("/api")
	cataloghttp.NewHandler(catalogSvc).Register(api)
	carthttp.NewHandler(cartSvc).Register(api)
	wishlisthttp.NewHandler(wishlistSvc).Register(api)
	orderhttp.NewHandler(orderSvc).Register(api.Group("", sessions.RequireAuth()), api)
	checkouthttp.NewHandler(checkoutSvc).Register(api)
	authhttp.NewHandler(authSvc, sessions, rdb, log).Register(api)

	chatEnabled := false
	if chat, err := newChat(ctx, cfg, log); err != nil {
		log.Warn("chat disabled", slog.Any("err", err))
	} else {
		chathttp.NewHandler(chat, log).Register(api)
		chatEnabled = true
	}

	var stripeKey string
	if cfg.Stripe.SecretKey != "" {
		gateway, err := stripe.New(stripe.Config{
			SecretKey:     cfg.Stripe.SecretKey,
			WebhookSecret: cfg.Stripe.WebhookSecret,
			Currency:      cfg.Stripe.Currency,
		})
		if err != nil {
			return err
		}
		payments := paymentapp.NewService(gateway, gateway, checkoutSvc, orderSvc, log)
		paymenthttp.NewHandler(payments).Register(api)
		stripeKey = cfg.Stripe.PublishableKey
		if stripeKey == "" {
			log.Warn("STRIPE_PUBLISHABLE_KEY not set, card payment page disabled")
		}
	} else {
		log.Info("STRIPE_SECRET_KEY not set, payments disabled")
	}

	pages := web.NewHandler(web.Deps{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Wishlist: wishlistSvc,
		Orders:   orderSvc,
		Checkout: checkoutSvc,
		Auth:     authSvc,
		Sessions: sessions,
		Log:      log,

		StripeKey:   stripeKey,
		ChatEnabled: chatEnabled,
	})
	pages.Register(site)
	r.NoRoute(sessions.OptionalAuth(), sessions.Guest(), pages.NoRoute)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http starting", slog.String("addr", addr), slog.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil {
			log.Error("http serve error", slog.Any("err", err))
			return err
		}
	}

	if err := shutdown.Graceful(10*time.Second, srv.Shutdown); err != nil {
		log.Warn("graceful stop timeout, forcing close", slog.Any("err", err))
		_ = srv.Close()
	}
	log.Info("bye")
	return nil
}

// newCatalog reads from Sanity behind the Redis cache. Without a Sanity
// project the built-in sample catalog is served; Validate only allows that
// for the memory store.
func newCatalog(cfg config.Config, rdb *redis.Client, log *slog.Logger) (*catalogapp.Service, error) {
	if cfg.Sanity.ProjectID == "" {
		log.Info("catalog: built-in sample data")
		cat := catalogmem.New(catalogmem.Seed())
		return catalogapp.NewService(cat, cat.Cities(), cat), nil
	}

	client, err := sanity.NewClient(sanity.Config{
		ProjectID:  cfg.Sanity.ProjectID,
		Dataset:    cfg.Sanity.Dataset,
		APIVersion: cfg.Sanity.APIVersion,
		Token:      cfg.Sanity.Token,
		UseCDN:     cfg.Sanity.UseCDN,
	})
	if err != nil {
		return nil, fmt.Errorf("sanity: %w", err)
	}
	repo := sanity.NewRepo(client)
	store := cache.New(rdb, cache.Repos{Products: repo, Cities: repo.Cities(), Content: repo}, cache.DefaultTTL, log)
	log.Info("catalog: sanity", slog.String("project", cfg.Sanity.ProjectID), slog.String("dataset", cfg.Sanity.Dataset))
	return catalogapp.NewService(store, store.Cities(), store), nil
}

func newChat(ctx context.Context, cfg config.Config, log *slog.Logger) (*chatapp.Service, error) {
	var provider chatapp.Provider
	switch cfg.Chat.Provider {
	case "gemini":
		c, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Chat.GeminiKey, Model: cfg.Chat.Model}, log)
		if err != nil {
			return nil, err
		}
		provider = c
	case "openai", "":
		c, err := openai.New(openai.Config{APIKey: cfg.Chat.OpenAIKey, BaseURL: cfg.Chat.OpenAIURL, Model: cfg.Chat.Model}, log)
		if err != nil {
			return nil, err
		}
		provider = c
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Chat.Provider)
	}
	return chatapp.NewService(provider, cfg.Chat.SystemPrompt), nil
}
