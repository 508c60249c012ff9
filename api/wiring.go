package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/rogerio-castellano/storefront/internal/dom"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/redissvc"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/web"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type dependencies struct {
	database  *sql.DB
	redis     *redissvc.RedisService
	publisher *notify.AMQPPublisher
	slot      repo.SlotStore
}

func (d *dependencies) Close() {
	if d.publisher != nil {
		d.publisher.Close()
	}
	if d.redis != nil {
		d.redis.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func loadPage(path string, unit currency.Unit) (*dom.Page, error) {
	raw := web.IndexHTML()
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read page: %w", err)
		}
	}
	return dom.Parse(bytes.NewReader(raw), dom.WithCurrency(unit))
}

// openDependencies connects the configured backends. On error everything opened
// so far is closed again.
func openDependencies(ctx context.Context, cfg config.Config, logger *zap.Logger) (_ *dependencies, err error) {
	deps := &dependencies{}
	defer func() {
		if err != nil {
			deps.Close()
		}
	}()

	if cfg.NeedsPostgres() {
		deps.database, err = db.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		deps.redis = redissvc.NewRedisService(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.Prefix)
		if err = deps.redis.Ping(ctx); err != nil {
			return nil, fmt.Errorf("could not connect to Redis: %w", err)
		}
		deps.slot = repo.NewRedisSlotStore(deps.redis)
	case config.BackendPostgres:
		store := repo.NewPostgresSlotStore(deps.database)
		if err = store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		deps.slot = store
	default:
		deps.slot = repo.NewInMemorySlotStore()
	}

	if cfg.Notify.AMQPURL != "" {
		deps.publisher, err = notify.DialAMQP(cfg.Notify.AMQPURL, cfg.Notify.Queue)
		if err != nil {
			return nil, err
		}
		logger.Info("publishing notifications", zap.String("queue", cfg.Notify.Queue))
	}

	return deps, nil
}

// loadCatalog seeds the product grid from an external source when configured, then
// captures the catalog from the page.
func loadCatalog(ctx context.Context, cfg config.Config, page *dom.Page, database *sql.DB, logger *zap.Logger) ([]models.Product, error) {
	var (
		records []models.Product
		err     error
	)
	switch cfg.Catalog.Source {
	case config.SourceYAML:
		records, err = catalog.LoadYAML(cfg.Catalog.YAMLPath)
	case config.SourcePostgres:
		records, err = catalog.NewPostgresSource(database).Load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if records != nil {
		if err := page.SeedProducts(records); err != nil {
			return nil, err
		}
	}

	products, err := catalog.ScrapeDocument(page.Document())
	if err != nil {
		logger.Warn("some product cards were skipped", zap.Error(err))
	}
	return products, nil
}

func buildNotifier(page *dom.Page, publisher *notify.AMQPPublisher, logger *zap.Logger) notify.Notifier {
	notifiers := notify.Multi{
		notify.NewLogNotifier(logger.Named("notify")),
		notify.NewToastNotifier(page),
	}
	if publisher != nil {
		notifiers = append(notifiers, publisher)
	}
	return notifiers
}
