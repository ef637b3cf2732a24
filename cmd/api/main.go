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

	"agentic_backend/internal/chat"
	"agentic_backend/internal/contact"
	"agentic_backend/internal/content"
	"agentic_backend/internal/email"
	"agentic_backend/internal/events"
	apphttp "agentic_backend/internal/http"
	"agentic_backend/internal/http/router"
	"agentic_backend/internal/lab"
	"agentic_backend/internal/notification"
	"agentic_backend/internal/scheduler"
	"agentic_backend/internal/site"
	"agentic_backend/platform/config"
	"agentic_backend/platform/logger"
	"agentic_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server",
		"env", cfg.Env,
		"addr", cfg.HTTPAddr,
		"notifyMode", cfg.GetContactNotifyMode(),
		"delivery", cfg.GetContactDelivery(),
		"chatStrategy", cfg.GetChatReplyStrategy(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	catalog, err := content.Load()
	if err != nil {
		log.Error("failed to load content catalog", "error", err)
		panic("failed to load content catalog: " + err.Error())
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(sender, cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	var health apphttp.HealthChecker
	if cfg.IsQueueEnabled() && cfg.GetContactNotifyMode() != config.NotifyModeLogOnly {
		queue, closeQueue := initContactQueue(ctx, cfg, log)
		defer closeQueue()
		notificationModule.SetContactQueue(queue)
		health = queue
	}

	contactModule := contact.NewModule(eventBus, cfg, val, log)

	chatModule, err := chat.NewModule(cfg, catalog, val, log)
	if err != nil {
		log.Error("failed to initialize chat module", "error", err)
		panic("failed to initialize chat module: " + err.Error())
	}

	labModule := lab.NewModule(catalog, log)

	siteModule, err := site.NewModule(catalog)
	if err != nil {
		log.Error("failed to render landing page", "error", err)
		panic("failed to render landing page: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   health,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			siteModule,
			contactModule,
			chatModule,
			labModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

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
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	// best_effort notifications may still be sending
	app.EventBus.Wait()
	log.Info("server stopped")
}

func initContactQueue(ctx context.Context, cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize contact notification queue", "error", err)
		panic("failed to initialize contact notification queue: " + err.Error())
	}

	if err := withRetry(ctx, log, "redis connection", 5, 2*time.Second, func() error {
		return client.Ping(ctx)
	}); err != nil {
		_ = client.Close()
		log.Error("failed to connect to redis", "error", err)
		panic("failed to connect to redis: " + err.Error())
	}
	log.Info("contact notification queue ready")

	return client, func() {
		_ = client.Close()
	}
}

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
