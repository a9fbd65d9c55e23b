package romanization

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var stripSymbols = strings.NewReplacer("~", "", "|", "", "^", "")

const sentenceSep = ". "

// Clean tidies raw romanized text: it strips scheme symbols, applies
// CleanupRules in order, and capitalizes each sentence.
func Clean(text string) string {
	text = stripSymbols.Replace(text)
	for _, rule := range CleanupRules {
		text = applyRule(text, rule)
	}

	sentences := strings.Split(text, sentenceSep)
	for i, s := range sentences {
		sentences[i] = upperFirst(strings.TrimSpace(s))
	}
	return upperFirst(strings.Join(sentences, sentenceSep))
}

// applyRule replaces rule.Old with rule.New. Spacing rules repeat until no
// match is left so a run of spaces before punctuation closes in one pass.
func applyRule(text string, rule Rule) string {
	if !strings.Contains(rule.Old, " ") {
		return strings.ReplaceAll(text, rule.Old, rule.New)
	}
	for strings.Contains(text, rule.Old) {
		text = strings.ReplaceAll(text, rule.Old, rule.New)
	}
	return text
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
