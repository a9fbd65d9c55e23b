package transform

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/jusunglee/hindify/internal/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	ret := m.Called(ctx, text, source, target)
	return ret.String(0), ret.Error(1)
}

func newTestTransformer(tr translation.Translator) *Transformer {
	return NewDefault(tr, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTransform(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("Translate", mock.Anything, "the boy", translation.LangEnglish, translation.LangHindi).Return("नमस्ते", nil)

	got := newTestTransformer(tr).Transform(context.Background(), "the boy")
	assert.Equal(t, Result{
		Transliteration: "द बॉय",
		Translation:     "नमस्ते",
		Romanization:    "Namaste",
	}, got)
	tr.AssertExpectations(t)
}

func TestTransformTranslationFailure(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("service unavailable"))

	got := newTestTransformer(tr).Transform(context.Background(), "the boy")
	assert.Equal(t, "द बॉय", got.Transliteration)
	assert.Equal(t, TranslationFailed, got.Translation)
	assert.Equal(t, TranslationFailed, got.Romanization)
}

func TestTransformWithoutTranslator(t *testing.T) {
	got := newTestTransformer(nil).Transform(context.Background(), "")
	assert.Equal(t, "", got.Transliteration)
	assert.Equal(t, TranslationFailed, got.Translation)
}

func TestTransformPreservesLineStructure(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("पहला\n\nदूसरा", nil)

	input := "the boy\n\nthe wife"
	got := newTestTransformer(tr).Transform(context.Background(), input)
	assert.Equal(t, "द बॉय\n\nद वाइफ", got.Transliteration)
	assert.Equal(t, strings.Count(input, "\n"), strings.Count(got.Transliteration, "\n"))
}

func TestSubEnginesAreAddressable(t *testing.T) {
	tf := newTestTransformer(nil)
	assert.Equal(t, "थिंक", tf.Transliterate("think"))
	assert.Equal(t, "Namaste", tf.Romanize("नमस्ते"))
	assert.False(t, tf.RomanizeResult("नमस्ते").FallbackUsed)
}

func TestTransformConcurrent(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("भारत", nil)
	tf := newTestTransformer(tr)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := tf.Transform(context.Background(), "the boy")
			assert.Equal(t, "Bhaarata", got.Romanization)
		}()
	}
	wg.Wait()
}
