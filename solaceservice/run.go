// Package solaceservice boots the solace HTTP service: configuration,
// storage, text-generation client, health checking, and graceful shutdown.
package solaceservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/solacehq/solace-server/internal/api"
	"github.com/solacehq/solace-server/internal/archive"
	"github.com/solacehq/solace-server/internal/config"
	"github.com/solacehq/solace-server/internal/health"
	"github.com/solacehq/solace-server/internal/llm"
	"github.com/solacehq/solace-server/internal/logger"
	"github.com/solacehq/solace-server/internal/store"
	"github.com/solacehq/solace-server/internal/store/memory"
	"github.com/solacehq/solace-server/internal/store/postgres"
	"github.com/solacehq/solace-server/internal/store/sqlite"
)

// Run starts the solace service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("solace-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("llm_model", cfg.LLMModel).
		Msg("Solace service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, err := newStore(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}

	arc, err := archive.New(cfg.ProfilesFile)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Profile archive unavailable")
		return err
	}

	client := llm.NewGroqClient(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMAPIKey)

	// Health checkers feed the /api/health flag.
	svcHealth := startHealthCheckers(ctx, cfg, log, st, client)

	// Block startup until dependencies report healthy; fail fast otherwise.
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	router := api.NewRouter(api.Deps{
		Store:     st,
		LLM:       client,
		Archive:   arc,
		Logger:    log,
		IsHealthy: svcHealth.IsHealthy,
	})

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newStore selects the storage backend from configuration.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.New(cfg.SQLitePath)
	case "postgres":
		return postgres.New(cfg.PostgresDSN)
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
}

// startHealthCheckers starts component checkers and the service-level aggregator.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store, client *llm.GroqClient) *health.ServiceHealthChecker {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	var checkers []health.HealthChecker

	if p, ok := st.(health.HealthPinger); ok {
		c := health.NewPingChecker("store", p, log, probeTimeout)
		go c.Start(ctx, interval)
		checkers = append(checkers, c)
	}

	llmChecker := health.NewPingChecker("llm", client, log, probeTimeout)
	go llmChecker.Start(ctx, interval)
	checkers = append(checkers, llmChecker)

	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		// Guide generation holds the request open for several provider calls.
		WriteTimeout: 3 * time.Minute,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
// Checkers start unhealthy and need at least one probe cycle.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	timeoutSeconds := cfg.HealthIntervalSeconds * 2
	if timeoutSeconds < 60 {
		timeoutSeconds = 60
	}
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
