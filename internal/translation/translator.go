// Package translation turns English text into Hindi through an external
// service. Implementations make a single call per request; callers own
// timeouts through the context.
package translation

import (
	"context"
	"time"

	"github.com/jusunglee/hindify/internal/metrics"
)

const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// Translator converts text from the source to the target language.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// observe records the outcome of one provider call.
func observe(provider string, start time.Time, err error) {
	metrics.TranslationDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	result := "success"
	if err != nil {
		result = "failed"
	}
	metrics.TranslationsTotal.WithLabelValues(provider, result).Inc()
}
