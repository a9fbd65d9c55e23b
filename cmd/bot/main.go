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

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/jusunglee/hindify/internal/bot"
	"github.com/jusunglee/hindify/internal/health"
	"github.com/jusunglee/hindify/internal/logger"
	"github.com/jusunglee/hindify/internal/provider"
	"github.com/jusunglee/hindify/internal/transform"
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

	fs := ff.NewFlagSet("hindify-bot")
	var (
		discordToken = fs.StringLong("discord-token", "", "Discord bot token")
		guildID      = fs.StringLong("discord-guild-id", "", "register commands to this guild only (instant updates)")
		rateLimit    = fs.IntLong("rate-limit", 5, "commands per minute per user")
		metricsAddr  = fs.StringLong("metrics-addr", ":9091", "address for the /health and /metrics server")
	)
	providerCfg := provider.RegisterFlags(fs)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *discordToken == "" {
		return errors.New("discord-token is required")
	}

	log := logger.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	translator, err := provider.NewTranslator(ctx, *providerCfg, log)
	if err != nil {
		return fmt.Errorf("configuring translator: %w", err)
	}
	defer translator.Close()

	dg, err := discordgo.New("Bot " + *discordToken)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}

	healthServer := health.New(*metricsAddr, "bot")
	go func() {
		if err := healthServer.Start(); err != nil {
			log.ErrorContext(ctx, "health server error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		healthServer.Shutdown(shutdownCtx)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	b := bot.New(
		bot.NewLogger(log),
		bot.NewDiscordSession(dg),
		transform.NewDefault(translator, log),
		bot.Config{GuildID: *guildID, RateLimit: *rateLimit, RateLimitWindow: time.Minute},
	)
	return b.Run(ctx)
}
