// Command server is the entry point for the Pixelgram backend.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pixelgram/internal/bootstrap"
	"pixelgram/internal/config"
	"pixelgram/internal/middleware"
	"pixelgram/internal/observability"
	"pixelgram/internal/server"

	"golang.org/x/sync/errgroup"
)

// @title Pixelgram API
// @version 1.0
// @description Photo and video sharing backend with session-cookie auth and a realtime search channel.

// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name pixelgram.sid
func main() {
	seedSamples := flag.Bool("seed-samples", true, "Load sample posts and reels into a sparse non-production store")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.InitLogger(cfg.Env, cfg.LogLevel)

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "pixelgram-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		middleware.Logger.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewServer(ctx, cfg, bootstrap.Options{SeedSamples: *seedSamples})
	if err != nil {
		middleware.Logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		middleware.Logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		middleware.Logger.Error("server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
