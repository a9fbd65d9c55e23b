package romanization

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRomanizer(scheme Scheme) *Romanizer {
	return New(scheme, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type failingScheme struct{}

func (failingScheme) Romanize(string) (string, error) {
	return "", errors.New("scheme unavailable")
}

func TestITRANSScheme(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"नमस्ते", "namaste"},
		{"हिंदी", "hiMdii"},
		{"भारत", "bhaarata"},
		{"क़लम", "qalama"},
		{"माँ", "maa.n"},
		{"ज्ञान", "j~naana"},
		{"ॐ", "OM"},
		{"राम आया।", "raama aayaa|"},
		{"१२३", "123"},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := ITRANS{}.Romanize(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, "ITRANS(%q)", tt.input)
	}
}

func TestITRANSRejectsInvalidUTF8(t *testing.T) {
	_, err := ITRANS{}.Romanize("\xffनमस्ते")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestRomanize(t *testing.T) {
	r := newTestRomanizer(nil)
	tests := []struct {
		input string
		want  string
	}{
		{"नमस्ते", "Namaste"},
		{"हिंदी", "Himdee"},
		{"माँ", "Maan"},
		{"ॐ", "Om"},
		{"राम आया। सीता गई।", "Raama aayaa seetaa gaee"},
		{"Translation failed", "Translation failed"},
		{"", ""},
	}
	for _, tt := range tests {
		res := r.RomanizeResult(tt.input)
		assert.False(t, res.FallbackUsed, tt.input)
		assert.NoError(t, res.Err, tt.input)
		assert.Equal(t, tt.want, res.Text, "Romanize(%q)", tt.input)
	}
}

func TestRomanizeFallsBackOnSchemeFailure(t *testing.T) {
	r := newTestRomanizer(failingScheme{})

	res := r.RomanizeResult("नमस्ते")
	assert.True(t, res.FallbackUsed)
	assert.EqualError(t, res.Err, "scheme unavailable")
	assert.Equal(t, "Nmste", res.Text)

	assert.Equal(t, res.Text, r.Romanize("नमस्ते"), "fallback output must be reproducible")
}

func TestRomanizeFallsBackOnMalformedInput(t *testing.T) {
	r := newTestRomanizer(nil)

	res := r.RomanizeResult("\xff")
	assert.True(t, res.FallbackUsed)
	assert.ErrorIs(t, res.Err, ErrMalformedInput)
	assert.Equal(t, "\xff", res.Text)

	res = r.RomanizeResult("नम\xfe\xffस्ते")
	assert.True(t, res.FallbackUsed)
	assert.Equal(t, "Nm\xfe\xffste", res.Text)
	assert.NotContains(t, res.Text, string(utf8.RuneError))
}

func TestFallback(t *testing.T) {
	r := newTestRomanizer(failingScheme{})
	tests := []struct {
		input string
		want  string
	}{
		{"नमस्ते", "Nmste"},
		{"क्षत्रिय", "Kshtriy"},
		{"ज्ञान", "Gyaan"},
		{"नमस्ते, 123!", "Nmste, 123!"},
		{"日本", "日本"},
		{"...", "..."},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Romanize(tt.input), "Fallback(%q)", tt.input)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"~na^m|", "Nam"},
		{"raama , siitaa !", "Raama, seetaa!"},
		{"hello world. this is it", "Hello world. This is it"},
		{"a. b. c", "A. B. C"},
		{"kRRiShi", "KriShi"},
		{"aaM ; uuH :", "Aam; ooh:"},
		{"raama  , siitaa   !", "Raama, seetaa!"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.input), "Clean(%q)", tt.input)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	r := newTestRomanizer(nil)
	inputs := []string{
		"नमस्ते",
		"मैं घर जा रहा हूँ। तुम कहाँ हो?",
		"वह बोला, \"ठीक है।\"",
		"राम आया. सीता गई.",
		"राम  , सीता",
		"राम   ! सीता  ?",
		"वह  ; यह  :",
	}
	for _, in := range inputs {
		once := r.Romanize(in)
		assert.Equal(t, once, Clean(once), "Clean should be idempotent on %q", in)
	}

	for _, raw := range []string{"Raama , seetaa", "a  .", "x   !", "it'  s", "say  \"hi\""} {
		once := Clean(raw)
		assert.Equal(t, once, Clean(once), "Clean should be idempotent on %q", raw)
	}
}

func TestRomanizeCapitalizesFirstLetter(t *testing.T) {
	r := newTestRomanizer(nil)
	for _, in := range []string{"नमस्ते", "भारत. देश", "खाना"} {
		out := r.Romanize(in)
		first, _ := utf8.DecodeRuneInString(out)
		assert.True(t, unicode.IsUpper(first), "Romanize(%q) = %q", in, out)
	}
}

func TestEnhancedTableExtendsBase(t *testing.T) {
	enhanced := EnhancedRomanTable()
	for k, v := range BaseRomanTable() {
		assert.Equal(t, v, enhanced[k], k)
	}
	assert.Equal(t, "", enhanced["्"])
	assert.Equal(t, "aa", enhanced["ा"])
}
