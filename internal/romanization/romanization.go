// Package romanization renders Devanagari text in Roman letters.
//
// A primary Scheme does the conversion; if it fails, a direct character table
// is used instead. Both paths go through Clean.
package romanization

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jusunglee/hindify/internal/metrics"
)

// Result reports which path produced Text. Err holds the primary scheme's
// error when FallbackUsed is set.
type Result struct {
	Text         string
	FallbackUsed bool
	Err          error
}

// Romanizer converts Devanagari to Roman script with a table fallback.
type Romanizer struct {
	scheme   Scheme
	table    RomanTable
	maxRunes int
	log      *slog.Logger
}

// New returns a Romanizer. A nil scheme selects ITRANS and a nil logger
// selects slog.Default().
func New(scheme Scheme, log *slog.Logger) *Romanizer {
	if scheme == nil {
		scheme = ITRANS{}
	}
	if log == nil {
		log = slog.Default()
	}
	table := EnhancedRomanTable()
	maxRunes := 1
	for k := range table {
		maxRunes = max(maxRunes, utf8.RuneCountInString(k))
	}
	return &Romanizer{scheme: scheme, table: table, maxRunes: maxRunes, log: log}
}

// Romanize never fails; see RomanizeResult.
func (r *Romanizer) Romanize(text string) string {
	return r.RomanizeResult(text).Text
}

// RomanizeResult runs the primary scheme and falls back to the character
// table exactly once if it errors.
func (r *Romanizer) RomanizeResult(text string) Result {
	raw, err := r.scheme.Romanize(text)
	if err == nil {
		return Result{Text: Clean(raw)}
	}

	r.log.Warn("romanization scheme failed, using fallback table", "error", err)
	metrics.RomanizationFallbacks.Inc()
	return Result{Text: r.Fallback(text), FallbackUsed: true, Err: err}
}

// Fallback maps text grapheme by grapheme through the enhanced table,
// preferring the longest key, and passes unmapped runes and invalid bytes
// through unchanged.
func (r *Romanizer) Fallback(text string) string {
	var b strings.Builder

	for i := 0; i < len(text); {
		if n := r.longestMatch(text[i:]); n > 0 {
			b.WriteString(r.table[text[i:i+n]])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}

	return Clean(b.String())
}

// longestMatch returns the byte length of the longest table key prefixing s,
// or 0 when none does.
func (r *Romanizer) longestMatch(s string) int {
	ends := make([]int, 0, r.maxRunes)
	for i := 0; i < len(s) && len(ends) < r.maxRunes; {
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			break
		}
		i += size
		ends = append(ends, i)
	}
	for k := len(ends) - 1; k >= 0; k-- {
		if _, ok := r.table[s[:ends[k]]]; ok {
			return ends[k]
		}
	}
	return 0
}
