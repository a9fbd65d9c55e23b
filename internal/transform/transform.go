// Package transform runs the full English → Hindi pipeline: a phonetic
// Devanagari rendering, a translation, and a romanization of the translation.
package transform

import (
	"context"
	"log/slog"

	"github.com/jusunglee/hindify/internal/romanization"
	"github.com/jusunglee/hindify/internal/translation"
	"github.com/jusunglee/hindify/internal/transliteration"
	"golang.org/x/sync/errgroup"
)

// TranslationFailed replaces the translation when the translator errors.
const TranslationFailed = "Translation failed"

// Result holds the three renderings of one input.
type Result struct {
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Romanization    string `json:"romanization"`
}

// Transformer fills every Result field for one input.
type Transformer struct {
	transliterator *transliteration.Transliterator
	romanizer      *romanization.Romanizer
	translator     translation.Translator
	log            *slog.Logger
}

// New returns a Transformer. A nil logger selects slog.Default().
func New(
	transliterator *transliteration.Transliterator,
	romanizer *romanization.Romanizer,
	translator translation.Translator,
	log *slog.Logger,
) *Transformer {
	if log == nil {
		log = slog.Default()
	}
	return &Transformer{
		transliterator: transliterator,
		romanizer:      romanizer,
		translator:     translator,
		log:            log,
	}
}

// NewDefault wires the default tables and the ITRANS scheme around translator.
func NewDefault(translator translation.Translator, log *slog.Logger) *Transformer {
	return New(transliteration.New(nil), romanization.New(nil, log), translator, log)
}

// Transform never fails. A translator error is logged and TranslationFailed
// is romanized in place of the translation.
func (t *Transformer) Transform(ctx context.Context, text string) Result {
	var res Result

	var eg errgroup.Group
	eg.Go(func() error {
		res.Transliteration = t.transliterator.Transliterate(text)
		return nil
	})
	eg.Go(func() error {
		res.Translation = t.Translate(ctx, text)
		return nil
	})
	_ = eg.Wait()

	res.Romanization = t.romanizer.Romanize(res.Translation)
	return res
}

// Transliterate renders English text in Devanagari by sound.
func (t *Transformer) Transliterate(text string) string {
	return t.transliterator.Transliterate(text)
}

// Romanize renders Devanagari text in Roman letters.
func (t *Transformer) Romanize(text string) string {
	return t.romanizer.Romanize(text)
}

// RomanizeResult is Romanize with the fallback path reported.
func (t *Transformer) RomanizeResult(text string) romanization.Result {
	return t.romanizer.RomanizeResult(text)
}

// Translate returns the Hindi translation of text, or TranslationFailed.
func (t *Transformer) Translate(ctx context.Context, text string) string {
	if t.translator == nil {
		return TranslationFailed
	}
	out, err := t.translator.Translate(ctx, text, translation.LangEnglish, translation.LangHindi)
	if err != nil {
		t.log.ErrorContext(ctx, "translation failed", "error", err)
		return TranslationFailed
	}
	return out
}
