// Package transliteration renders English text in Devanagari by sound.
//
// Words are matched against a PhoneticTable: whole words first, then the
// longest table key at each position, then single-character heuristics.
// Multiple spaces inside a line collapse to one.
package transliteration

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// maxKeyLen caps the substring length probed at each position.
const maxKeyLen = 8

const (
	leadingPunct  = "\"'("
	trailingPunct = ".,!?;:)'\"…"
)

const (
	vowelSignII = "ी"
	consonantVa = "व"
)

// Token is a whitespace-delimited word split into its punctuation and the
// lowercase core that gets transliterated.
type Token struct {
	Prefix string
	Core   string
	Suffix string
}

// SplitToken lowercases word and peels off leading quotes and brackets and
// trailing punctuation.
func SplitToken(word string) Token {
	runes := []rune(strings.ToLower(word))

	start := 0
	for start < len(runes) && strings.ContainsRune(leadingPunct, runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && strings.ContainsRune(trailingPunct, runes[end-1]) {
		end--
	}

	return Token{
		Prefix: string(runes[:start]),
		Core:   string(runes[start:end]),
		Suffix: string(runes[end:]),
	}
}

// Transliterator renders English words phonetically in Devanagari.
type Transliterator struct {
	table PhoneticTable
}

// New returns a Transliterator over table. A nil table selects the default.
func New(table PhoneticTable) *Transliterator {
	if table == nil {
		table = DefaultPhoneticTable()
	}
	return &Transliterator{table: table}
}

// Transliterate converts text line by line. Blank lines stay blank and the
// number of lines is preserved.
func (t *Transliterator) Transliterate(text string) string {
	lines := strings.Split(text, "\n")
	out := lo.Map(lines, func(line string, _ int) string {
		return t.transliterateLine(line)
	})
	return strings.Join(out, "\n")
}

func (t *Transliterator) transliterateLine(line string) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return ""
	}
	out := lo.Map(words, func(word string, _ int) string {
		return t.transliterateToken(word)
	})
	return strings.Join(out, " ")
}

func (t *Transliterator) transliterateToken(word string) string {
	tok := SplitToken(word)
	if tok.Core == "" {
		return word
	}
	if mapped, ok := t.table.Lookup(tok.Core); ok {
		return tok.Prefix + mapped + tok.Suffix
	}
	return tok.Prefix + t.TransliterateWord(tok.Core) + tok.Suffix
}

// TransliterateWord maps a single lowercase word using greedy longest match,
// ignoring the whole-word fast path.
func (t *Transliterator) TransliterateWord(word string) string {
	runes := []rune(word)
	var b strings.Builder

	for i := 0; i < len(runes); {
		if mapped, n := t.longestMatch(runes[i:]); n > 0 {
			b.WriteString(mapped)
			i += n
			continue
		}
		b.WriteString(t.fallback(runes, i))
		i++
	}
	return b.String()
}

func (t *Transliterator) longestMatch(rest []rune) (string, int) {
	for n := min(maxKeyLen, len(rest)); n > 0; n-- {
		if mapped, ok := t.table.Lookup(string(rest[:n])); ok {
			return mapped, n
		}
	}
	return "", 0
}

func (t *Transliterator) fallback(runes []rune, i int) string {
	r := runes[i]
	if !unicode.IsLetter(r) {
		return string(r)
	}
	switch {
	case r == 'y' && i > 0:
		return vowelSignII
	case r == 'w' && i < len(runes)-1 && strings.ContainsRune("aeiou", runes[i+1]):
		return consonantVa
	}
	if mapped, ok := t.table.Lookup(string(r)); ok {
		return mapped
	}
	return string(r)
}
