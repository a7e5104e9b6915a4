package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/fire-spread-sim/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/fire-spread-sim/internal/adapter/kafka"
	"github.com/couchcryptid/fire-spread-sim/internal/adapter/mapbox"
	"github.com/couchcryptid/fire-spread-sim/internal/config"
	"github.com/couchcryptid/fire-spread-sim/internal/domain"
	"github.com/couchcryptid/fire-spread-sim/internal/engine"
	"github.com/couchcryptid/fire-spread-sim/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	scenarios, err := config.LoadScenarios(cfg.ScenariosPath)
	if err != nil {
		logger.Error("failed to load scenarios", "path", cfg.ScenariosPath, "error", err)
		os.Exit(1)
	}
	logger.Info("scenarios loaded", "count", len(scenarios))

	// Place-label resolver (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var resolver domain.PlaceResolver
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		resolver = mapbox.NewCachedResolver(client, cfg.MapboxCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox place labels enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox place labels disabled")
	}

	// Sink publisher (feature-flagged via KAFKA_ENABLED).
	var publisher engine.Publisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka publication enabled", "topic", cfg.KafkaSinkTopic)
	} else {
		logger.Info("kafka publication disabled")
	}

	builder := engine.NewBuilder(nil, logger, metrics)
	service := engine.NewService(builder, resolver, publisher, logger, metrics)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:              cfg.HTTPAddr,
		Simulator:         service,
		Ready:             service,
		Scenarios:         scenarios,
		CorrectedWindCone: cfg.CorrectedWindCone(),
		Logger:            logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
