package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// withMetricsServer serves /metrics on addr for as long as fn runs.
// A failing server cancels the context passed to fn.
func withMetricsServer(ctx context.Context, addr string, logger *zap.Logger, fn func(context.Context) error) error {
	if addr == "" {
		return fn(ctx)
	}

	// The server outlives the stop signal so draining runs stay observable.
	serveCtx, stopServing := context.WithCancel(context.WithoutCancel(ctx))
	defer stopServing()
	g, gctx := errgroup.WithContext(serveCtx)

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	context.AfterFunc(gctx, cancelRun)

	g.Go(func() error {
		return serveMetrics(gctx, addr, logger)
	})
	g.Go(func() error {
		defer stopServing()
		return fn(runCtx)
	})
	return g.Wait()
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	})
	defer stop()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}
	return nil
}
