// Command auroramap fetches the latest OVATION aurora forecast and publishes
// it as an interactive threshold map, with optional raster and GeoJSON
// artifacts. It takes no arguments; see internal/config for the environment
// surface.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/auroraops/aurora-map/internal/adapter/httpadapter"
	"github.com/auroraops/aurora-map/internal/adapter/swpc"
	"github.com/auroraops/aurora-map/internal/builder"
	"github.com/auroraops/aurora-map/internal/config"
	"github.com/auroraops/aurora-map/internal/observability"
	"github.com/auroraops/aurora-map/internal/pipeline"
	"github.com/auroraops/aurora-map/internal/publisher"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := swpc.NewClient(cfg.FeedURL, cfg.FetchTimeout, logger)
	b := builder.New(logger)
	pub := publisher.New(logger)
	p := pipeline.New(client, b, pub, cfg, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := p.Run(ctx)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Saved interactive map to %s\n", result.HTMLPath)
	if result.GeoJSONPath != "" {
		fmt.Printf("Saved GeoJSON data to %s\n", result.GeoJSONPath)
	}
	if result.ImagePath != "" {
		fmt.Printf("Saved JPEG snapshot to %s\n", result.ImagePath)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("metrics textfile write failed", "error", err, "path", cfg.MetricsTextfile)
		}
	}

	if cfg.PreviewAddr != "" {
		servePreview(ctx, cfg, metrics, logger)
	}
}

// servePreview keeps the process alive serving the output directory until
// interrupted.
func servePreview(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) {
	srv := httpadapter.NewServer(cfg.PreviewAddr, cfg.OutputDir, metrics.Gatherer(), logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("preview server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("preview server shutdown error", "error", err)
	}
}
