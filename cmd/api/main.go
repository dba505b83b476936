package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/techstore/storefront-backend/api/routes"
	"github.com/techstore/storefront-backend/internal/accounts"
	"github.com/techstore/storefront-backend/internal/admin"
	"github.com/techstore/storefront-backend/internal/blog"
	"github.com/techstore/storefront-backend/internal/cart"
	"github.com/techstore/storefront-backend/internal/catalog"
	"github.com/techstore/storefront-backend/internal/checkout"
	"github.com/techstore/storefront-backend/internal/contact"
	"github.com/techstore/storefront-backend/internal/newsletter"
	"github.com/techstore/storefront-backend/internal/orders"
	"github.com/techstore/storefront-backend/internal/reviews"
	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/db"
	"github.com/techstore/storefront-backend/pkg/logger"
	"github.com/techstore/storefront-backend/pkg/metrics"
	"github.com/techstore/storefront-backend/pkg/migrate"
	"github.com/techstore/storefront-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// Cookies always ride HTTPS outside dev.
	if cfg.App.IsProd() {
		cfg.Session.CookieSecure = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(cfg.DB, cfg.App.IsDev())
	if err != nil {
		return err
	}
	defer dbClient.Close()

	if err := migrate.AutoRun(ctx, cfg, dbClient); err != nil {
		return err
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	sessions, err := session.NewManager(redisClient, cfg.Session.TTL())
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	gdb := dbClient.DB()
	accountsRepo := accounts.NewRepository(gdb)
	catalogRepo := catalog.NewRepository(gdb)
	ordersRepo := orders.NewRepository(gdb)
	reviewsRepo := reviews.NewRepository(gdb)
	newsletterRepo := newsletter.NewRepository(gdb)
	contactRepo := contact.NewRepository(gdb)
	blogRepo := blog.NewRepository(gdb)

	accountsSvc, err := accounts.NewService(accountsRepo, dbClient, cfg.Password, log)
	if err != nil {
		return err
	}
	reviewsSvc, err := reviews.NewService(reviewsRepo, catalogRepo, log)
	if err != nil {
		return err
	}
	blogSvc, err := blog.NewService(blogRepo, log)
	if err != nil {
		return err
	}
	catalogSvc, err := catalog.NewService(catalogRepo, reviewsRepo, blogRepo, log, cfg.Catalog.FeaturedLimit)
	if err != nil {
		return err
	}
	cartSvc, err := cart.NewService(sessions, catalogRepo, log)
	if err != nil {
		return err
	}
	checkoutSvc, err := checkout.NewService(dbClient, ordersRepo, catalogRepo, log)
	if err != nil {
		return err
	}
	ordersSvc, err := orders.NewService(ordersRepo, log)
	if err != nil {
		return err
	}
	newsletterSvc, err := newsletter.NewService(newsletterRepo, log)
	if err != nil {
		return err
	}
	contactSvc, err := contact.NewService(contactRepo, log)
	if err != nil {
		return err
	}
	adminSvc, err := admin.NewService(accountsRepo, catalogRepo, ordersRepo, reviewsRepo, log)
	if err != nil {
		return err
	}

	router := routes.NewRouter(routes.Dependencies{
		Config:      cfg,
		Logger:      log,
		DB:          dbClient,
		Redis:       redisClient,
		Sessions:    sessions,
		Registry:    registry,
		HTTPMetrics: httpMetrics,
		Accounts:    accountsSvc,
		Catalog:     catalogSvc,
		Cart:        cartSvc,
		Checkout:    checkoutSvc,
		Orders:      ordersSvc,
		Reviews:     reviewsSvc,
		Newsletter:  newsletterSvc,
		Contact:     contactSvc,
		Blog:        blogSvc,
		Admin:       adminSvc,
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "port", cfg.App.Port), "server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
