package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/raido/internal/publisher"
	"github.com/starford/raido/internal/render"
	"github.com/starford/raido/internal/storage"
)

// Run executes one publish with the given options.
func Run(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(app.verbosity),
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("writer_post_dir", cfg.Writer.PostDir),
		slog.String("writer_image_dir", cfg.Writer.ImageDir),
		slog.String("hugo_post_dir", cfg.Hugo.PostDir),
		slog.String("hugo_image_dir", cfg.Hugo.ImageDir))

	// Ensure output directories exist.
	if err := os.MkdirAll(cfg.Hugo.PostDir, 0o755); err != nil {
		return fmt.Errorf("create post output dir: %w", err)
	}
	if err := os.MkdirAll(cfg.Hugo.ImageDir, 0o755); err != nil {
		return fmt.Errorf("create image output dir: %w", err)
	}

	source, err := storage.NewSource(cfg.Writer.PostDir)
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}
	site, err := storage.NewSite(cfg.Hugo.PostDir)
	if err != nil {
		return fmt.Errorf("init site: %w", err)
	}
	copier := storage.NewImageCopier(cfg.Writer.ImageDir, cfg.Hugo.ImageDir)

	renderer := render.New(cfg.Content.EmptyBodyText, copier)
	pub := publisher.New(source, site, renderer, logger)

	if err := pub.Run(); err != nil {
		logger.Error("Publish failed", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// logLevel maps repeated -v occurrences to a slog level, capped at debug.
func logLevel(verbosity int) slog.Level {
	switch verbosity {
	case 0:
		return slog.LevelWarn
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
