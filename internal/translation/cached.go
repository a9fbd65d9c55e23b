package translation

import (
	"context"
	"log/slog"

	"github.com/jusunglee/hindify/internal/db"
	"github.com/jusunglee/hindify/internal/metrics"
)

// Cached serves repeated requests from a db.Repository. Cache errors are
// logged and never fail the translation.
type Cached struct {
	next     Translator
	repo     db.Repository
	provider string
	log      *slog.Logger
}

func NewCached(next Translator, repo db.Repository, provider string, log *slog.Logger) *Cached {
	if log == nil {
		log = slog.Default()
	}
	return &Cached{next: next, repo: repo, provider: provider, log: log}
}

func (c *Cached) Translate(ctx context.Context, text, source, target string) (string, error) {
	hash := db.HashText(text)

	cached, err := c.repo.GetCachedTranslation(ctx, db.GetCachedTranslationParams{
		SourceLang: source,
		TargetLang: target,
		TextHash:   hash,
		Provider:   c.provider,
	})
	if err == nil {
		metrics.TranslationCacheLookups.WithLabelValues("hit").Inc()
		return cached.Translation, nil
	}
	metrics.TranslationCacheLookups.WithLabelValues("miss").Inc()
	if !db.IsNoRows(err) {
		c.log.WarnContext(ctx, "translation cache lookup failed", "error", err)
	}

	out, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if err := c.repo.CacheTranslation(ctx, db.CacheTranslationParams{
		SourceLang:  source,
		TargetLang:  target,
		TextHash:    hash,
		Provider:    c.provider,
		SourceText:  text,
		Translation: out,
	}); err != nil {
		c.log.WarnContext(ctx, "failed to cache translation", "error", err)
	}
	return out, nil
}
