package romanization

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedInput is returned by a Scheme for text that is not valid UTF-8.
var ErrMalformedInput = errors.New("malformed input: invalid UTF-8")

// Scheme is a primary Devanagari to Roman conversion.
type Scheme interface {
	Romanize(text string) (string, error)
}

const (
	nukta  = '़'
	virama = '्'
)

// ITRANS implements the ITRANS romanization scheme using the aa/ii/uu spelling
// for long vowels. Consonants carry an inherent "a" unless followed by a vowel
// sign or virama.
type ITRANS struct{}

// Long vowels are aa/ii/uu rather than the common ITRANS A/I/U so the
// cleanup table can rewrite ii and uu into ee and oo.
var itransVowels = map[rune]string{
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ii", 'उ': "u", 'ऊ': "uu",
	'ऋ': "RRi", 'ॠ': "RRI", 'ऌ': "LLi", 'ॡ': "LLI",
	'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au", 'ऍ': "e", 'ऑ': "o",
}

var itransSigns = map[rune]string{
	'ा': "aa", 'ि': "i", 'ी': "ii", 'ु': "u", 'ू': "uu",
	'ृ': "RRi", 'ॄ': "RRI", 'ॢ': "LLi", 'ॣ': "LLI",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au", 'ॅ': "e", 'ॉ': "o",
}

var itransConsonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "~N",
	'च': "ch", 'छ': "Ch", 'ज': "j", 'झ': "jh", 'ञ': "~n",
	'ट': "T", 'ठ': "Th", 'ड': "D", 'ढ': "Dh", 'ण': "N",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'ळ': "L", 'व': "v",
	'श': "sh", 'ष': "Sh", 'स': "s", 'ह': "h",
}

// Consonant + nukta. NFC leaves these decomposed.
var itransNukta = map[rune]string{
	'क': "q", 'ख': "K", 'ग': "G", 'ज': "z",
	'ड': ".D", 'ढ': ".Dh", 'फ': "f", 'य': "Y",
}

var itransMarks = map[rune]string{
	'ं': "M", 'ः': "H", 'ँ': ".n", 'ऽ': ".a", 'ॐ': "OM",
	'।': "|", '॥': "||",
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

func (ITRANS) Romanize(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrMalformedInput
	}

	runes := []rune(norm.NFC.String(text))
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		r := runes[i]

		roman, isConsonant := itransConsonants[r]
		if !isConsonant {
			switch {
			case itransVowels[r] != "":
				b.WriteString(itransVowels[r])
			case itransSigns[r] != "":
				b.WriteString(itransSigns[r])
			case itransMarks[r] != "":
				b.WriteString(itransMarks[r])
			case r == nukta || r == virama:
			default:
				b.WriteRune(r)
			}
			i++
			continue
		}

		j := i + 1
		if j < len(runes) && runes[j] == nukta {
			if alt, ok := itransNukta[r]; ok {
				roman = alt
			}
			j++
		}
		b.WriteString(roman)

		switch {
		case j < len(runes) && runes[j] == virama:
			j++
		case j < len(runes) && itransSigns[runes[j]] != "":
			b.WriteString(itransSigns[runes[j]])
			j++
		default:
			b.WriteByte('a')
		}
		i = j
	}

	return b.String(), nil
}
