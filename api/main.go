package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/logging"
	"github.com/rogerio-castellano/storefront/internal/search"
	"go.uber.org/zap"
)

// @title Storefront API
// @version 1.0
// @description Cart and product search events for the storefront page.
// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./storefront.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Could not build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("storefront stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	unit, err := cfg.Cart.Unit()
	if err != nil {
		return err
	}

	page, err := loadPage(cfg.Page.Path, unit)
	if err != nil {
		return err
	}

	deps, err := openDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	products, err := loadCatalog(ctx, cfg, page, deps.database, logger)
	if err != nil {
		return err
	}
	logger.Info("catalog captured", zap.Int("products", len(products)), zap.String("source", cfg.Catalog.Source))

	cartStore := cart.New(ctx, catalog.New(products), deps.slot,
		cart.WithView(page),
		cart.WithNotifier(buildNotifier(page, deps.publisher, logger)),
		cart.WithLogger(logger.Named("cart")),
		cart.WithSlotKey(cfg.Cart.SlotKey),
		cart.WithCurrency(unit),
	)
	filter := search.New(products,
		search.WithView(page),
		search.WithLogger(logger.Named("search")),
		search.WithRevealStep(cfg.Search.RevealStep),
	)

	limiter := rl.New(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router.NewRouter(handlers.NewServer(page, cartStore, filter, logger), logger, limiter),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
