package app

import (
	"context"
	"fmt"

	"github.com/kapu/pedigree-chart-go/internal/adapter"
	"github.com/kapu/pedigree-chart-go/internal/config"
	"github.com/kapu/pedigree-chart-go/internal/domain"
	"github.com/kapu/pedigree-chart-go/internal/server"
	"github.com/kapu/pedigree-chart-go/internal/service"
	"github.com/kapu/pedigree-chart-go/internal/service/cache"
	"github.com/kapu/pedigree-chart-go/internal/service/database"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	httpServer *server.Server
	closers    []func()
}

// NewServer returns the pre-wired HTTP server.
func (c *Container) NewServer() (*server.Server, error) {
	if c == nil || c.httpServer == nil {
		return nil, fmt.Errorf("server dependencies not initialized")
	}
	return c.httpServer, nil
}

// Close releases infrastructure handles in reverse construction order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all infrastructure services and returns a container
// capable of creating a fully-wired server. All heavy-weight
// initialization (DB/cache/schema) is performed here so the HTTP layer
// stays focused on request orchestration.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Cache and database
	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	if err := postgresSvc.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Chart pipeline
	decomposer := service.NewNameDecomposer(logger)
	localizer := service.NewLocalizer(cfg.Chart.Language, logger)
	builder := service.NewRecordBuilder(decomposer, service.BuilderConfig{
		ViewURLTemplate: cfg.Chart.ViewURLTemplate,
		EditURLTemplate: cfg.Chart.EditURLTemplate,
		Preferences: domain.TreePreferences{
			ShowHighlightImages: cfg.Chart.ShowHighlightImages,
		},
	}, logger)
	renderer := service.NewChartRenderer(logger)

	// Wire format adapters and the HTTP surface
	formatter := adapter.NewRecordFormatter()
	eventAdapter := adapter.NewEventAdapter()

	handler := server.NewHandler(postgresSvc, cacheSvc, builder, renderer, localizer, formatter, cfg.Chart, logger)
	events := server.NewEventChannel(handler, eventAdapter, logger)
	httpServer := server.NewServer(cfg.Server.Addr(), handler, events, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		httpServer: httpServer,
		closers:    closers,
	}, nil
}
