package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Katos24/crosslist-pro/internal/api/handlers"
	mw "github.com/Katos24/crosslist-pro/internal/api/middleware"
	"github.com/Katos24/crosslist-pro/internal/config"
	"github.com/Katos24/crosslist-pro/internal/marketplace"
	"github.com/Katos24/crosslist-pro/internal/marketplace/ebay"
	"github.com/Katos24/crosslist-pro/internal/marketplace/facebook"
	"github.com/Katos24/crosslist-pro/internal/publish"
	"github.com/Katos24/crosslist-pro/internal/store"
	"github.com/Katos24/crosslist-pro/internal/telemetry"
	"github.com/Katos24/crosslist-pro/internal/tokens"
	"github.com/Katos24/crosslist-pro/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and credential refresher",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, "crosslist-pro", cfg.Telemetry.Endpoint)
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	oauth := ebay.NewOAuth(
		cfg.Ebay.AppID,
		cfg.Ebay.CertID,
		cfg.Ebay.RedirectURI,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
		ebay.WithAuthURL(cfg.Ebay.AuthURL),
	)

	limiter := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	sellClient := ebay.NewSellClient(
		ebay.Policies{
			FulfillmentPolicyID: cfg.Ebay.Policies.FulfillmentPolicyID,
			PaymentPolicyID:     cfg.Ebay.Policies.PaymentPolicyID,
			ReturnPolicyID:      cfg.Ebay.Policies.ReturnPolicyID,
			MerchantLocationKey: cfg.Ebay.Policies.MerchantLocationKey,
		},
		ebay.WithBaseURL(cfg.Ebay.APIBaseURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithRateLimiter(limiter),
	)

	orchestrator := publish.New(
		st,
		[]marketplace.Adapter{sellClient, facebook.New()},
		publish.WithLogger(log),
	)

	if cfg.Refresh.Enabled {
		refresher, err := tokens.NewRefresher(
			st, oauth, cfg.Refresh.Interval, cfg.Refresh.Window, log,
		)
		if err != nil {
			return fmt.Errorf("creating credential refresher: %w", err)
		}
		refresher.Start()
		defer func() { <-refresher.Stop().Done() }()
	}

	e := newServer(cfg, log, st, orchestrator, oauth, limiter)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newServer(
	cfg *config.Config,
	log *slog.Logger,
	st store.Store,
	orchestrator *publish.Orchestrator,
	oauth *ebay.OAuth,
	limiter *ebay.RateLimiter,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(mw.RequestLog(log))
	e.Use(mw.Recovery(log))
	e.Use(mw.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(st)
	e.POST("/api/v1/auth/register", authHandler.Register)
	e.POST("/api/v1/auth/login", authHandler.Login)

	listingsHandler := handlers.NewListingsHandler(st)
	e.POST("/api/v1/listings", listingsHandler.Create)
	e.DELETE("/api/v1/listings/:id", listingsHandler.Delete)
	e.POST("/api/v1/listings/:id/sold", listingsHandler.MarkSold)

	publishHandler := handlers.NewPublishHandler(orchestrator)
	e.POST("/api/v1/listings/:id/publish", publishHandler.Publish)

	ebayAuthHandler := handlers.NewEbayAuthHandler(st, oauth, limiter, cfg.Server.DashboardURL, log)
	e.GET("/oauth/ebay/connect", ebayAuthHandler.Connect)
	e.GET("/oauth/ebay/callback", ebayAuthHandler.Callback)
	e.GET("/api/v1/ebay/status", ebayAuthHandler.Status)

	// Read endpoints go through huma, which also serves the OpenAPI
	// document at /openapi.json.
	api := humaecho.New(e, huma.DefaultConfig("Crosslist Pro API", Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingQueryHandler(st))

	return e
}
