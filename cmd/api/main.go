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

	"golang.org/x/sync/errgroup"

	"gadget_haven_backend/internal/catalog"
	catalogrepo "gadget_haven_backend/internal/catalog/repository"
	"gadget_haven_backend/internal/events"
	apphttp "gadget_haven_backend/internal/http"
	"gadget_haven_backend/internal/http/router"
	"gadget_haven_backend/internal/notification"
	"gadget_haven_backend/internal/submissions"
	"gadget_haven_backend/platform/config"
	"gadget_haven_backend/platform/docstore"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/ratelimit"
	"gadget_haven_backend/platform/validator"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run wires the application and serves until a shutdown signal arrives.
// Setup failures panic; a serve failure is returned after cleanup so main
// can exit non-zero.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var store docstore.Store
	if err := withRetry(ctx, log, "document store connection", 5, 2*time.Second, func() error {
		s, openErr := docstore.Open(ctx, cfg)
		if openErr != nil {
			return openErr
		}
		store = s
		return nil
	}); err != nil {
		log.Error("failed to connect to document store", "error", err)
		panic("failed to connect to document store: " + err.Error())
	}
	log.Info("document store connected")

	formLimiter, closeLimiter := initFormLimiter(cfg, log)

	val := validator.New()
	eventBus := events.NewInMemoryBus(log)

	// ========================================================================
	// Domain Modules
	// ========================================================================

	catalogRepo, err := catalogrepo.New()
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		panic("failed to load catalog: " + err.Error())
	}
	catalogModule := catalog.NewModule(catalogRepo, log)
	submissionsModule := submissions.NewModule(store, val, eventBus, log)

	notificationModule := notification.New(cfg, log)
	notificationModule.RegisterHandlers(eventBus)
	log.Info("notification module registered", "adminEmail", cfg.AdminEmail)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:      cfg,
		Logger:      log,
		Health:      store,
		FormLimiter: formLimiter,
		Modules: []apphttp.Module{
			catalogModule,
			submissionsModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := serve(ctx, srv, log, cfg.ShutdownTimeout)
	if serveErr != nil {
		log.Error("server error", "error", serveErr)
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		log.Error("failed to close document store", "error", err)
	}
	if closeLimiter != nil {
		closeLimiter()
	}
	log.Info("server stopped")
	return serveErr
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
// It returns the listener error if the server could not serve.
func serve(ctx context.Context, srv *http.Server, log *logger.Logger, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// initFormLimiter returns nil when FORM_RATE_LIMIT is unset so the router
// skips throttling entirely. With REDIS_URL the quota is shared across replicas.
func initFormLimiter(cfg config.RateLimitConfig, log *logger.Logger) (ratelimit.Limiter, func()) {
	perMinute := cfg.GetFormRateLimit()
	if perMinute <= 0 {
		return nil, nil
	}

	if cfg.GetRedisURL() != "" {
		limiter, err := ratelimit.NewRedisLimiterFromURL(cfg.GetRedisURL(), perMinute, time.Minute)
		if err == nil {
			log.Info("form rate limit enabled", "perMinute", perMinute, "backend", "redis")
			return limiter, func() { _ = limiter.Close() }
		}
		log.Warn("redis rate limiter unavailable; falling back to in-memory", "error", err)
	}

	limiter, err := ratelimit.NewMemoryLimiter(perMinute)
	if err != nil {
		log.Error("failed to initialize form rate limiter", "error", err)
		return nil, nil
	}
	log.Info("form rate limit enabled", "perMinute", perMinute, "backend", "memory")
	return limiter, nil
}

// withRetry runs fn until it succeeds, with quadratic backoff between attempts.
func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
