package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"fabricshop/bot/internal/bot"
	"fabricshop/bot/internal/cache"
	"fabricshop/bot/internal/catalog"
	"fabricshop/bot/internal/client"
	"fabricshop/bot/internal/config"
	"fabricshop/bot/internal/repository"
	"fabricshop/bot/internal/server"
	"fabricshop/bot/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config    *config.Config
	Records   store.RecordStore
	Catalog   *catalog.Store
	Refresher *catalog.Refresher
	Messenger client.MessengerClient
	Handler   *bot.Handler
	Server    *server.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	// Initialize the record store backend
	var records store.RecordStore
	switch cfg.Store.Backend {
	case "postgres":
		db, err := pgxpool.New(context.Background(),
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
			))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		container.db = db
		records = repository.NewRecordRepository(db)
	case "airtable":
		records = store.NewAirtableStore(cfg.Airtable)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}

	// Optionally wrap product reads with the Redis cache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		records = cache.NewRecordCache(rdb, records, time.Duration(cfg.Redis.ProductTTL)*time.Second)
	}
	container.Records = records

	// Catalog snapshot store and refresher
	catalogStore := catalog.NewStore()
	container.Catalog = catalogStore
	container.Refresher = catalog.NewRefresher(
		catalogStore,
		records,
		time.Duration(cfg.Catalog.RefreshInterval)*time.Second,
	)

	// Messenger client and navigation handler
	messenger := client.NewMessengerClient(cfg.Messenger)
	container.Messenger = messenger

	handler := bot.NewHandler(catalogStore, records, messenger, cfg.Catalog.PageSize)
	container.Handler = handler

	container.Server = server.NewServer(cfg.Messenger.VerifyToken, handler)

	return container, nil
}

// Run starts the catalog refresher and the webhook server
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Refresher.Run(ctx)
	})

	g.Go(func() error {
		addr := fmt.Sprintf("%s:%d", c.Config.Server.Host, c.Config.Server.Port)
		log.Infof("🚀 Webhook server listening on %s", addr)

		srv := &http.Server{
			Addr:    addr,
			Handler: c.Server.Router(),
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		c.redis.Close()
	}

	log.Info("Container shut down successfully")
	return nil
}
