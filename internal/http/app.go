package http

import (
	"context"

	"agentic_backend/internal/events"
	"agentic_backend/platform/config"
	"agentic_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.RateLimitConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and rate limit settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness checks (the task queue when delivery is queued). Optional.
	Health HealthChecker
	// EventBus carries contact submissions to the notification module.
	EventBus events.Bus
	// Modules contains all HTTP-facing site modules.
	Modules []Module
}
