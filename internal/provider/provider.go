// Package provider builds the translator chain shared by every binary from
// flag/env configuration.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jusunglee/hindify/internal/anthropic"
	"github.com/jusunglee/hindify/internal/db"
	"github.com/jusunglee/hindify/internal/db/postgres"
	"github.com/jusunglee/hindify/internal/db/sqlite"
	"github.com/jusunglee/hindify/internal/google"
	"github.com/jusunglee/hindify/internal/gtranslate"
	"github.com/jusunglee/hindify/internal/llm"
	"github.com/jusunglee/hindify/internal/translation"
	"github.com/peterbourgon/ff/v4"
)

const (
	ProviderAnthropic  = "anthropic"
	ProviderGoogle     = "google"
	ProviderGTranslate = "gtranslate"
)

type Config struct {
	Provider        string
	Model           string
	AnthropicAPIKey string
	GoogleAPIKey    string
	MTBaseURL       string
	DatabaseURL     string
}

// RegisterFlags adds the translator flags to fs and returns the Config they
// populate once fs is parsed.
func RegisterFlags(fs *ff.FlagSet) *Config {
	cfg := &Config{}
	fs.StringEnumVar(&cfg.Provider, 0, "llm-provider", "translation provider; LLM providers fall back to gtranslate", ProviderGTranslate, ProviderAnthropic, ProviderGoogle)
	fs.StringVar(&cfg.Model, 0, "llm-model", "", "LLM model name (provider default when empty)")
	fs.StringVar(&cfg.AnthropicAPIKey, 0, "anthropic-api-key", "", "Anthropic API key")
	fs.StringVar(&cfg.GoogleAPIKey, 0, "google-api-key", "", "Google API key")
	fs.StringVar(&cfg.MTBaseURL, 0, "mt-base-url", gtranslate.DefaultBaseURL, "machine translation endpoint")
	fs.StringVar(&cfg.DatabaseURL, 0, "database-url", "", "translation cache (sqlite://path or postgres://...); empty disables caching")
	return cfg
}

// validKey rejects unset keys and the "your_..." placeholders shipped in
// example .env files.
func validKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.HasPrefix(key, "your_")
}

// NewLLMClient returns the configured LLM client, or nil when the provider is
// plain machine translation. A missing or placeholder key is logged and also
// yields nil, leaving gtranslate to serve every request.
func NewLLMClient(ctx context.Context, cfg Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.Provider {
	case ProviderAnthropic:
		if !validKey(cfg.AnthropicAPIKey) {
			log.WarnContext(ctx, "anthropic-api-key not set, falling back to gtranslate")
			return nil, nil
		}
		return anthropic.NewClient(cfg.AnthropicAPIKey, anthropic.Model(cfg.Model)), nil
	case ProviderGoogle:
		if !validKey(cfg.GoogleAPIKey) {
			log.WarnContext(ctx, "google-api-key not set, falling back to gtranslate")
			return nil, nil
		}
		client, err := google.NewClient(ctx, cfg.GoogleAPIKey, google.Model(cfg.Model))
		if err != nil {
			return nil, fmt.Errorf("creating Google client: %w", err)
		}
		return client, nil
	case ProviderGTranslate, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported llm-provider: %s", cfg.Provider)
	}
}

// OpenRepository opens the cache named by databaseURL. SQLite is used for
// sqlite:// URLs and bare paths, PostgreSQL for postgres:// URLs.
func OpenRepository(ctx context.Context, databaseURL string) (db.Repository, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		return repo, nil
	default:
		repo, err := sqlite.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("creating SQLite database: %w", err)
		}
		return repo, nil
	}
}

// Translator is the assembled chain plus the resources it holds.
type Translator struct {
	translation.Translator
	Name string
	repo db.Repository
}

// Repository returns the cache backing the chain, or nil when caching is off.
func (t *Translator) Repository() db.Repository {
	return t.repo
}

func (t *Translator) Close() error {
	if t.repo == nil {
		return nil
	}
	return t.repo.Close()
}

// NewTranslator assembles: LLM (if configured) → gtranslate fallback. With a
// cache, each leg is cached under its own provider name so a machine
// translation served during an LLM outage is never stored as the LLM's.
func NewTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*Translator, error) {
	client, err := NewLLMClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	out := &Translator{Name: ProviderGTranslate}
	if cfg.DatabaseURL != "" {
		repo, err := OpenRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		out.repo = repo
	}

	var mt translation.Translator = gtranslate.NewClient(cfg.MTBaseURL)
	mt = out.cached(mt, ProviderGTranslate, log)
	out.Translator = mt
	if client != nil {
		out.Name = client.Name()
		primary := out.cached(translation.NewLLMTranslator(client, cfg.Model), out.Name, log)
		out.Translator = translation.NewFallback(primary, mt, log)
	}

	log.InfoContext(ctx, "translator configured", "provider", out.Name, "model", cfg.Model, "cache", out.repo != nil)
	return out, nil
}

func (t *Translator) cached(next translation.Translator, provider string, log *slog.Logger) translation.Translator {
	if t.repo == nil {
		return next
	}
	return translation.NewCached(next, t.repo, provider, log)
}
