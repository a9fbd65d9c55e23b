package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Fallback tries Primary once and, if it fails, Secondary once.
type Fallback struct {
	primary   Translator
	secondary Translator
	log       *slog.Logger
}

func NewFallback(primary, secondary Translator, log *slog.Logger) *Fallback {
	if log == nil {
		log = slog.Default()
	}
	return &Fallback{primary: primary, secondary: secondary, log: log}
}

func (f *Fallback) Translate(ctx context.Context, text, source, target string) (string, error) {
	out, err := f.primary.Translate(ctx, text, source, target)
	if err == nil {
		return out, nil
	}
	if ctx.Err() != nil {
		return "", err
	}

	f.log.WarnContext(ctx, "primary translator failed, using secondary", "error", err)
	out, err2 := f.secondary.Translate(ctx, text, source, target)
	if err2 != nil {
		return "", fmt.Errorf("all translators failed: %w", errors.Join(err, err2))
	}
	return out, nil
}
