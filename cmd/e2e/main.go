// e2e runs the transform pipeline against the configured live translator and
// checks that a second pass is served from the cache. It needs network
// access and, for LLM providers, a real API key.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hindify/internal/logger"
	"github.com/jusunglee/hindify/internal/provider"
	"github.com/jusunglee/hindify/internal/transform"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/samber/lo"
)

var phrases = []string{
	"hello",
	"the boy is going home",
	"thank you very much",
}

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

func run() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hindify-e2e")
	timeout := fs.DurationLong("timeout", 30*time.Second, "per-phrase timeout")
	cfg := provider.RegisterFlags(fs)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx := context.Background()

	// A fresh cache so the first pass always reaches the provider.
	dbPath := fmt.Sprintf("/tmp/hindify-e2e-%d.db", time.Now().UnixNano())
	defer os.Remove(dbPath)
	cfg.DatabaseURL = "sqlite://" + dbPath

	translator, err := provider.NewTranslator(ctx, *cfg, log)
	if err != nil {
		return fmt.Errorf("configuring translator: %w", err)
	}
	defer translator.Close()
	tf := transform.NewDefault(translator, log)

	log.Info("Phase 1: live translation", "provider", translator.Name)
	first := make(map[string]transform.Result, len(phrases))
	for _, phrase := range phrases {
		res, err := transformChecked(ctx, tf, phrase, *timeout)
		if err != nil {
			return err
		}
		first[phrase] = res
		log.Info("transformed", "input", phrase, "translation", res.Translation, "romanization", res.Romanization)
	}

	log.Info("Phase 2: cached translation")
	for _, phrase := range phrases {
		start := time.Now()
		res, err := transformChecked(ctx, tf, phrase, *timeout)
		if err != nil {
			return err
		}
		if res != first[phrase] {
			return fmt.Errorf("cached result for %q differs: %+v vs %+v", phrase, res, first[phrase])
		}
		log.Info("served from cache", "input", phrase, "elapsed", time.Since(start))
	}
	return nil
}

func transformChecked(ctx context.Context, tf *transform.Transformer, phrase string, timeout time.Duration) (transform.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res := tf.Transform(ctx, phrase)
	switch {
	case res.Translation == transform.TranslationFailed:
		return res, fmt.Errorf("translating %q: translator failed", phrase)
	case !lo.SomeBy([]rune(res.Translation), isDevanagari):
		return res, fmt.Errorf("translation of %q has no Devanagari: %q", phrase, res.Translation)
	case lo.SomeBy([]rune(res.Romanization), isDevanagari):
		return res, fmt.Errorf("romanization of %q still has Devanagari: %q", phrase, res.Romanization)
	case !lo.SomeBy([]rune(res.Transliteration), isDevanagari):
		return res, errors.New("transliteration produced no Devanagari")
	}
	return res, nil
}

func isDevanagari(r rune) bool {
	return unicode.Is(unicode.Devanagari, r)
}
