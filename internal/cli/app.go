package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/computor"
	"github.com/aretw0/computor/internal/config"
	"github.com/aretw0/computor/internal/presentation/tui"
	"github.com/aretw0/computor/pkg/adapters/badger"
	"github.com/aretw0/computor/pkg/adapters/file"
	"github.com/aretw0/computor/pkg/adapters/memory"
	"github.com/aretw0/computor/pkg/adapters/redis"
	"github.com/aretw0/computor/pkg/observability"
	"github.com/aretw0/computor/pkg/persistence/middleware"
	"github.com/aretw0/computor/pkg/ports"
	"github.com/aretw0/computor/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// cacheTimeout bounds each call to a networked cache.
const cacheTimeout = 500 * time.Millisecond

// App bundles the engine with the infrastructure selected by the config.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Engine   *computor.Engine
	Cache    ports.ReportCache // nil when caching is disabled
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	closers []func() error
}

// NewApp builds the engine with standard CLI conventions.
func NewApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
	}
	app.Metrics = observability.NewMetrics(app.Registry)

	cache, closer, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		mws := []middleware.Middleware{middleware.NewLoggingMiddleware(logger)}
		if cfg.Cache.Backend == config.CacheRedis {
			mws = append(mws, middleware.NewTimeoutMiddleware(cacheTimeout))
		}
		app.Cache = middleware.Chain(cache, mws...)
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}

	hooks := app.Metrics.Hooks().Merge(observability.LogHooks(logger))
	engineOpts := []computor.Option{
		computor.WithLogger(logger),
		computor.WithLifecycleHooks(hooks),
		computor.WithStrictFactors(cfg.StrictFactors),
	}
	if app.Cache != nil {
		engineOpts = append(engineOpts, computor.WithCache(app.Cache))
	}
	app.Engine = computor.New(engineOpts...)
	return app, nil
}

// Close releases the cache backend.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Renderer returns the renderer for the configured output format, styled for out.
func (a *App) Renderer(out io.Writer) (runner.Renderer, error) {
	return NewRenderer(a.Config.Output, out)
}

// NewRenderer picks colors and markdown style based on whether out is a terminal.
func NewRenderer(output string, out io.Writer) (runner.Renderer, error) {
	format, err := runner.ParseFormat(output)
	if err != nil {
		return nil, err
	}
	opts := runner.RendererOptions{Color: tui.ColorEnabled(out)}
	if format == runner.FormatMarkdown {
		content, err := tui.NewRenderer(tui.MarkdownStyle(out))
		if err != nil {
			return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		opts.Content = content
	}
	return runner.NewRenderer(format, opts)
}

func newCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.ReportCache, func() error, error) {
	switch cfg.Backend {
	case config.CacheNone, "":
		return nil, nil, nil
	case config.CacheMemory:
		return memory.NewStore(), nil, nil
	case config.CacheFile:
		return file.New(cfg.Path), nil, nil
	case config.CacheBadger:
		store, err := badger.Open(badger.Config{Path: cfg.Path, TTL: cfg.TTL, Logger: logger})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.CacheRedis:
		opts := []redis.Option{redis.WithTTL(cfg.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis unavailable at %s: %w", cfg.Redis.Addr, err)
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}
