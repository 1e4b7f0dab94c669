package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/XavierBriggs/Herald/internal/status"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the linking scheduler and fixture status updater until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		metricsServer := startMetricsServer(cfg.Metrics.Addr)

		updater := status.NewUpdater(a.db, a.registry.GetAll(), cfg.Scheduler.StatusInterval, logger)
		go updater.Start(ctx)

		if err := a.scheduler.Start(ctx); err != nil {
			return err
		}

		for _, sport := range a.registry.GetAll() {
			logger.WithFields(logrus.Fields{
				"sport":          sport.GetSportKey(),
				"poll_interval":  sport.GetPollInterval(),
				"lookahead_days": sport.GetLookaheadDays(),
				"match_duration": sport.GetMatchDuration(),
			}).Info("sport enabled")
		}
		logger.Info("herald started")

		<-ctx.Done()
		logger.Info("shutting down gracefully")

		done := make(chan struct{})
		go func() {
			a.scheduler.Stop()
			updater.Stop()
			close(done)
		}()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Warn("metrics server shutdown")
			}
		}

		select {
		case <-done:
			logger.Info("herald stopped")
			return nil
		case <-shutdownCtx.Done():
			return errors.New("shutdown timeout exceeded")
		}
	},
}

// startMetricsServer serves /metrics; an empty addr disables it
func startMetricsServer(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server failed")
		}
	}()

	logger.WithField("addr", addr).Info("metrics server listening")
	return server
}
