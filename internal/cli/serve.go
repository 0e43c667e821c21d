package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/decks"
	httpadapter "github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/http"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/llm/openrouter"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/storage/memkv"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/adapters/storage/sqlitekv"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/app"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/config"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/ports"
	"github.com/Wei-YuChen/Tarot-predition-sub000/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP daemon",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.ValidateLLM(); err != nil {
			return err
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)

		storage, closeStorage, err := openStorage(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStorage()

		deckStore := decks.NewEmbeddedStore()

		llmClient := openrouter.NewClient(
			&http.Client{Timeout: cfg.LLMTimeout},
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBaseURL,
			cfg.LLMModel,
			cfg.LLMFallbackModels,
			logger,
		)

		cache := session.NewCache(storage, logger, cfg.CacheTTL)
		if removed := cache.PurgeStale(cmd.Context()); removed > 0 {
			logger.Info("purged stale sessions", "removed", removed)
		}

		svc := app.NewReadingService(deckStore, llmClient, cache, logger, cfg.LLMModel, cfg.DefaultLocale)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		e.Use(httpadapter.RequestIDMiddleware())
		e.Use(httpadapter.LoggingMiddleware(logger))

		handler := httpadapter.NewHandler(svc)
		handler.Register(e)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", cfg.HTTPAddr)
			if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
		}
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		return nil
	},
}

// openStorage picks sqlite when a path is configured, otherwise
// process-local memory (sessions then vanish on restart, which the
// cache tolerates by design).
func openStorage(cfg config.Config, logger *slog.Logger) (ports.Storage, func(), error) {
	if cfg.StoragePath == "" {
		logger.Info("no STORAGE_PATH set, sessions held in memory")
		return memkv.New(), func() {}, nil
	}
	store, err := sqlitekv.New(cfg.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}
