package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/amirasaad/finsible/infra"
	infra_cache "github.com/amirasaad/finsible/infra/cache"
	infra_eventbus "github.com/amirasaad/finsible/infra/eventbus"
	infra_repository "github.com/amirasaad/finsible/infra/repository"
	"github.com/amirasaad/finsible/pkg/cache"
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Dependencies holds the initialized infrastructure and releases it on Close.
type Dependencies struct {
	config.Deps
	closers []io.Closer
}

// Close releases the event bus and cache connections in reverse order of
// creation.
func (d *Dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *Dependencies,
	err error,
) {
	logger := setupLogger(cfg.Log)
	deps = &Dependencies{}
	deps.Logger = logger
	deps.Config = cfg

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if err := infra.RunMigrations(db, logger); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		return nil, err
	}
	deps.Uow = infra_repository.NewUoW(db)

	c, err := initCache(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.Cache = c
	if closer, ok := c.(io.Closer); ok {
		deps.closers = append(deps.closers, closer)
	}

	bus, err := initEventBus(cfg, logger)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}
	deps.EventBus = bus
	if closer, ok := bus.(io.Closer); ok {
		deps.closers = append(deps.closers, closer)
	}

	return deps, nil
}

// initCache selects redis when a URL is configured. An unreachable server
// degrades to the in-memory cache; a malformed URL is a configuration error.
func initCache(cfg *config.App, logger *slog.Logger) (cache.Cache, error) {
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		logger.Info("Using in-memory cache")
		return infra_cache.NewMemoryCache(time.Minute), nil
	}
	opt, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Redis.PoolSize > 0 {
		opt.PoolSize = cfg.Redis.PoolSize
	}
	if cfg.Redis.DialTimeout > 0 {
		opt.DialTimeout = cfg.Redis.DialTimeout
	}
	if cfg.Redis.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.Redis.ReadTimeout
	}
	if cfg.Redis.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.Redis.WriteTimeout
	}

	rc := infra_cache.NewRedisCacheWithOptions(opt, cfg.Redis.KeyPrefix, logger)
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, falling back to in-memory cache",
			"addr", opt.Addr, "error", err)
		_ = rc.Close()
		return infra_cache.NewMemoryCache(time.Minute), nil
	}
	logger.Info("Using redis cache", "addr", opt.Addr, "db", opt.DB)
	return rc, nil
}

// initEventBus selects kafka when brokers are configured. A broker that
// cannot be reached degrades to the in-memory bus.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	if cfg.Kafka == nil || len(cfg.Kafka.Brokers) == 0 {
		logger.Info("Using in-memory event bus")
		return infra_eventbus.NewWithMemory(logger), nil
	}
	bus, err := infra_eventbus.NewWithKafka(cfg.Kafka.Brokers, logger, infra_eventbus.KafkaEventBusConfig{
		GroupID:      cfg.Kafka.GroupID,
		TopicPrefix:  cfg.Kafka.Topic,
		WriteTimeout: cfg.Kafka.WriteTimeout,
		SASLUsername: cfg.Kafka.SASLUsername,
		SASLPassword: cfg.Kafka.SASLPassword,
	})
	if err != nil {
		logger.Warn("Kafka unavailable, falling back to in-memory event bus",
			"brokers", cfg.Kafka.Brokers, "error", err)
		return infra_eventbus.NewWithMemory(logger), nil
	}
	logger.Info("Using kafka event bus", "brokers", cfg.Kafka.Brokers, "topic_prefix", cfg.Kafka.Topic)
	return bus, nil
}
