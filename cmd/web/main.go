package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hindify/internal/janitor"
	"github.com/jusunglee/hindify/internal/logger"
	"github.com/jusunglee/hindify/internal/provider"
	"github.com/jusunglee/hindify/internal/ratelimit"
	"github.com/jusunglee/hindify/internal/transform"
	"github.com/jusunglee/hindify/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hindify-web")
	var (
		port           = fs.Int64Long("port", 3000, "HTTP server port")
		allowedOrigins = fs.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
		rateLimit      = fs.IntLong("rate-limit", 30, "requests per minute per client IP")
	)
	providerCfg := provider.RegisterFlags(fs)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	translator, err := provider.NewTranslator(ctx, *providerCfg, log)
	if err != nil {
		return fmt.Errorf("configuring translator: %w", err)
	}
	defer translator.Close()

	if p, ok := translator.Repository().(janitor.PoolStatter); ok {
		go janitor.ExportPoolStats(ctx, p, 15*time.Second)
	}

	limiter := ratelimit.New(*rateLimit, time.Minute)
	go limiter.RunCleanup(ctx, 5*time.Minute)

	router := web.NewRouter(transform.NewDefault(translator, log), log, parseOrigins(*allowedOrigins), limiter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.InfoContext(ctx, "received signal, shutting down gracefully", "signal", sig)
		cancel(errors.New("signal received"))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "server shutdown error", "error", err)
		}
	}()

	log.InfoContext(ctx, "starting web server", "port", *port, "provider", translator.Name)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func parseOrigins(raw string) []string {
	origins := lo.Map(strings.Split(raw, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	})
	return lo.Compact(origins)
}
