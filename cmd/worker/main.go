package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hindify/internal/health"
	"github.com/jusunglee/hindify/internal/janitor"
	"github.com/jusunglee/hindify/internal/logger"
	"github.com/jusunglee/hindify/internal/provider"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hindify-worker")
	var (
		databaseURL = fs.StringLong("database-url", "", "translation cache (sqlite://path or postgres://...)")
		ttl         = fs.DurationLong("cache-ttl", janitor.DefaultTTL, "age after which cached translations are deleted")
		interval    = fs.DurationLong("interval", 1*time.Hour, "prune interval")
		metricsAddr = fs.StringLong("metrics-addr", ":9090", "address for the /health and /metrics server")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *databaseURL == "" {
		return errors.New("database-url is required")
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	log := logger.New()

	repo, err := provider.OpenRepository(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer repo.Close()

	healthServer := health.New(*metricsAddr, "worker")
	go func() {
		log.InfoContext(ctx, "starting health server", "addr", *metricsAddr)
		if err := healthServer.Start(); err != nil {
			log.ErrorContext(ctx, "health server error", "error", err)
		}
	}()

	if p, ok := repo.(janitor.PoolStatter); ok {
		go janitor.ExportPoolStats(ctx, p, 15*time.Second)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	log.InfoContext(ctx, "worker starting", "interval", *interval, "ttl", *ttl)
	janitor.New(repo, *ttl, log).Run(ctx, *interval)

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		log.Error("health server shutdown error", "error", err)
	}
	log.Info("worker stopped")
	return nil
}
