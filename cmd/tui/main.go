package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jusunglee/hindify/internal/logger"
	"github.com/jusunglee/hindify/internal/provider"
	"github.com/jusunglee/hindify/internal/transform"
	"github.com/jusunglee/hindify/internal/tui"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

const envFile = ".env"

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func mainE() error {
	if tui.NeedsSetup(envFile) {
		saved, err := tui.RunSetup(envFile)
		if err != nil {
			return fmt.Errorf("running setup: %w", err)
		}
		if !saved {
			fmt.Println("Setup skipped, using Google Translate without a cache.")
		}
	}
	_ = godotenv.Load(envFile)

	fs := ff.NewFlagSet("hindify-tui")
	timeout := fs.DurationLong("timeout", 30*time.Second, "per-transform timeout")
	providerCfg := provider.RegisterFlags(fs)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	// Log lines would tear the alt screen, so logging is opt-in via LOG_LEVEL.
	log := logger.New()
	if os.Getenv("LOG_LEVEL") == "" {
		log = slog.New(slog.DiscardHandler)
	}

	translator, err := provider.NewTranslator(context.Background(), *providerCfg, log)
	if err != nil {
		return fmt.Errorf("configuring translator: %w", err)
	}
	defer translator.Close()

	p := tea.NewProgram(tui.New(transform.NewDefault(translator, log), *timeout), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
