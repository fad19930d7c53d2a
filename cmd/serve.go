package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/config"
	"github.com/Triaksa-Space/anchorpoint-web/domain/contact"
	"github.com/Triaksa-Space/anchorpoint-web/domain/health"
	"github.com/Triaksa-Space/anchorpoint-web/middleware"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/metrics"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/telemetry"
	"github.com/Triaksa-Space/anchorpoint-web/routes"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout    = 10 * time.Second
	cacheCleanupPeriod = 5 * time.Minute
	contactLimitScope  = "contact"
)

func newServeCommand(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newLogger(cfg *config.Config) logger.Logger {
	logger.Init(logger.Config{
		Level:       logger.Level(cfg.LogLevel),
		Environment: cfg.AppEnv,
		Version:     version,
	})
	return logger.Get()
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := newLogger(cfg)

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: logger.DefaultServiceName,
		Version:     version,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("Tracing shutdown failed", logger.Err(err))
		}
	}()

	rdb, err := config.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	m := metrics.New()
	lister, probe, err := buildLister(cfg, rdb, m, log)
	if err != nil {
		return err
	}
	submitter, err := buildSubmitter(ctx, cfg, log)
	if err != nil {
		return err
	}

	e := routes.New(routes.Deps{
		Config:    cfg,
		Log:       log,
		Lister:    lister,
		Submitter: submitter,
		Limiter:   buildLimiter(cfg, rdb),
		Metrics:   m,
		Health:    health.NewHandler(version, health.WithCMS(probe), health.WithRedis(rdb)),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			logger.String("addr", cfg.HTTPAddr),
			logger.String("env", cfg.AppEnv),
			logger.Transport(submitter.Name()),
			logger.Bool("extended_pages", cfg.Site.ExtendedPages),
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// buildLister wires the content store client with instrumentation and, when
// CMS_CACHE_TTL is positive, a snapshot cache shared through redis if one is
// configured. The second lister skips the cache and backs the readiness probe.
func buildLister(cfg *config.Config, rdb *redis.Client, m *metrics.Metrics, log logger.Logger) (cms.Lister, cms.Lister, error) {
	client, err := cms.NewClient(cms.Config{
		BaseURL:  cfg.CMS.BaseURL,
		APIKey:   cfg.CMS.APIKey,
		SiteID:   cfg.CMS.SiteID,
		Timeout:  cfg.CMS.Timeout,
		PageSize: cfg.CMS.PageSize,
	})
	if err != nil {
		return nil, nil, err
	}

	direct := cms.Instrument(client, m)
	var store cms.Store = cms.NewMemoryStore(cacheCleanupPeriod)
	if rdb != nil {
		store = cms.NewRedisStore(rdb)
	}
	return cms.NewCachedLister(direct, store, cfg.CMS.CacheTTL, log), direct, nil
}

func buildSubmitter(ctx context.Context, cfg *config.Config, log logger.Logger) (contact.Submitter, error) {
	switch cfg.Contact.Transport {
	case config.TransportResend:
		return contact.NewResendSubmitter(cfg.Contact.ResendAPIKey, cfg.Contact.From, cfg.Contact.To, log), nil
	case config.TransportSES:
		return contact.NewSESSubmitter(ctx, cfg.Contact.AWSRegion, cfg.Contact.From, cfg.Contact.To, log)
	default:
		return contact.NewLogSubmitter(log), nil
	}
}

func buildLimiter(cfg *config.Config, rdb *redis.Client) middleware.LimitStore {
	limits := middleware.Limits{
		MaxRequests:   cfg.RateLimit.Max,
		Window:        cfg.RateLimit.Window,
		BlockDuration: cfg.RateLimit.Block,
	}
	if rdb != nil {
		return middleware.NewRedisLimitStore(rdb, contactLimitScope, limits)
	}
	return middleware.NewMemoryLimitStore(limits)
}
