package romanization

// RomanTable maps a Devanagari grapheme (one to three code points) to Roman
// letters.
type RomanTable map[string]string

var baseTable = RomanTable{
	// Vowels
	"अ": "a", "आ": "aa", "इ": "i", "ई": "ee", "उ": "u", "ऊ": "oo",
	"ए": "e", "ऐ": "ai", "ओ": "o", "औ": "au", "अं": "an", "अः": "ah",

	// Consonants
	"क": "k", "ख": "kh", "ग": "g", "घ": "gh", "ङ": "ng",
	"च": "ch", "छ": "chh", "ज": "j", "झ": "jh", "ञ": "ny",
	"ट": "t", "ठ": "th", "ड": "d", "ढ": "dh", "ण": "n",
	"त": "t", "थ": "th", "द": "d", "ध": "dh", "न": "n",
	"प": "p", "फ": "ph", "ब": "b", "भ": "bh", "म": "m",
	"य": "y", "र": "r", "ल": "l", "व": "v", "श": "sh",
	"ष": "sh", "स": "s", "ह": "h",

	// Conjuncts and specials
	"क्ष": "ksh", "त्र": "tr", "ज्ञ": "gya", "ऋ": "ri", "ॐ": "om",
}

var signs = RomanTable{
	"ा": "aa", "ि": "i", "ी": "ee", "ु": "u", "ू": "oo",
	"े": "e", "ै": "ai", "ो": "o", "ौ": "au", "ं": "n", "ः": "h",
	"्": "", "ँ": "n",
}

var enhancedTable = func() RomanTable {
	t := make(RomanTable, len(baseTable)+len(signs))
	for k, v := range baseTable {
		t[k] = v
	}
	for k, v := range signs {
		t[k] = v
	}
	return t
}()

// BaseRomanTable covers independent vowels, consonants and conjuncts. The map
// is shared; callers must not modify it.
func BaseRomanTable() RomanTable {
	return baseTable
}

// EnhancedRomanTable extends the base table with vowel signs, anusvara,
// visarga, virama and chandrabindu. It drives the fallback path.
func EnhancedRomanTable() RomanTable {
	return enhancedTable
}

// Rule replaces every occurrence of Old with New.
type Rule struct {
	Old string
	New string
}

// CleanupRules are applied in order after symbol stripping. Identity entries
// such as aa→aa are kept as explicit no-ops.
var CleanupRules = []Rule{
	// Vowels
	{"aa", "aa"}, {"ii", "ee"}, {"uu", "oo"}, {"R^i", "ri"}, {"RRi", "ri"},

	// Consonant clusters
	{"kh", "kh"}, {"gh", "gh"}, {"ch", "ch"}, {"jh", "jh"}, {"ñ", "ny"},
	{"th", "th"}, {"dh", "dh"}, {"ph", "ph"}, {"bh", "bh"}, {"sh", "sh"},

	// Scheme artifacts
	{"M", "m"}, {"H", "h"}, {".n", "n"}, {".m", "m"}, {".h", "h"},
	{".t", "t"}, {".d", "d"}, {".s", "s"}, {".r", "r"}, {".l", "l"},

	// Word endings
	{"ti", "ti"}, {"te", "te"}, {"ta", "ta"}, {"tu", "tu"},
	{"ni", "ni"}, {"ne", "ne"}, {"na", "na"}, {"nu", "nu"},

	// Spacing
	{" .", "."}, {" ,", ","}, {" !", "!"}, {" ?", "?"},
	{" ;", ";"}, {" :", ":"}, {"' ", "'"}, {" \"", "\""},
}
