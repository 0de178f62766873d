// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"gadget_haven_backend/platform/config"
	"gadget_haven_backend/platform/logger"
	"gadget_haven_backend/platform/ratelimit"
)

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP and CORS settings.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for health checks (store ping).
	Health HealthChecker
	// FormLimiter throttles public form submissions; nil disables it.
	FormLimiter ratelimit.Limiter
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
