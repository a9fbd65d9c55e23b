package transliteration

// PhoneticTable maps lowercase English spellings to a Devanagari
// approximation of how they sound.
type PhoneticTable map[string]string

// Lookup returns the mapping for key.
func (t PhoneticTable) Lookup(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// DefaultPhoneticTable returns the built-in English phonetic table. The map is
// shared; callers must not modify it.
func DefaultPhoneticTable() PhoneticTable {
	return defaultTable
}

var defaultTable = PhoneticTable{
	// Letters
	"a": "अ", "b": "ब", "c": "क", "d": "द", "e": "ई", "f": "फ",
	"g": "ग", "h": "ह", "i": "आई", "j": "ज", "k": "क", "l": "ल",
	"m": "म", "n": "न", "o": "ओ", "p": "प", "q": "क्यू", "r": "आर",
	"s": "एस", "t": "ट", "u": "यू", "v": "वी", "w": "डब्ल्यू",
	"x": "एक्स", "y": "वाई", "z": "जेड",

	// Consonant clusters
	"th": "थ", "sh": "श", "ch": "च", "ph": "फ", "gh": "घ",
	"kh": "ख", "dh": "ध", "bh": "भ", "jh": "झ", "ng": "ंग",
	"ck": "क", "st": "स्ट", "sp": "स्प", "sc": "स्क", "sk": "स्क",

	// Vowel clusters
	"aa": "आ", "ee": "ई", "ii": "ई", "oo": "ऊ", "uu": "ऊ",
	"ai": "ऐ", "ay": "ए", "au": "औ", "aw": "ऑ", "ey": "ए",
	"ou": "ओ", "ow": "आउ", "oy": "ऑय", "ea": "ई", "ie": "आई",
	"oa": "ओ", "ue": "यू", "ui": "यूआई", "eu": "यू",

	// High frequency words
	"the": "द", "and": "एंड", "are": "आर", "you": "यू", "for": "फॉर",
	"not": "नॉट", "but": "बट", "can": "कैन", "all": "ऑल", "any": "एनी",
	"had": "हैड", "her": "हर", "was": "वॉज़", "one": "वन", "our": "आवर",
	"out": "आउट", "day": "डे", "get": "गेट", "has": "हैज़", "him": "हिम",
	"his": "हिज़", "how": "हाउ", "man": "मैन", "new": "न्यू", "now": "नाउ",
	"old": "ओल्ड", "see": "सी", "two": "टू", "way": "वे", "who": "हू",
	"boy": "बॉय", "did": "डिड", "its": "इट्स", "let": "लेट", "put": "पुट",
	"say": "से", "she": "शी", "too": "टू", "use": "यूज़", "what": "व्हाट",
	"when": "व्हेन", "where": "व्हेयर", "why": "व्हाई", "with": "विथ",
	"will": "विल", "were": "वर", "been": "बीन", "have": "हैव",
	"this": "दिस", "that": "दैट", "they": "दे", "them": "देम",
	"there": "देयर", "then": "देन", "than": "दैन", "these": "दीज़",
	"those": "दोज़", "think": "थिंक", "through": "थ्रू", "time": "टाइम",
	"take": "टेक", "tell": "टेल", "turn": "टर्न", "try": "ट्राई",

	// Narrative vocabulary
	"first": "फर्स्ट", "wife": "वाइफ", "wedding": "वेडिंग", "night": "नाइट",
	"lying": "लाइंग", "bed": "बेड", "quietly": "क्वाइटली", "said": "सेड",
	"die": "डाई", "died": "डाइड", "life": "लाइफ", "born": "बॉर्न",
	"married": "मैरिड", "marry": "मैरी", "guess": "गेस", "forgot": "फॉरगॉट",
	"about": "अबाउट", "need": "नीड", "needing": "नीडिंग", "kid": "किड",
	"child": "चाइल्ड", "suppose": "सपोज़", "might": "माइट", "led": "लेड",
	"live": "लिव", "lived": "लिव्ड", "long": "लॉन्ग", "care": "केयर",
	"daughter": "डॉटर", "remember": "रिमेम्बर", "mother": "मदर",
	"even": "ईवन", "well": "वेल", "doesnt": "डज़न्ट",

	// Contractions
	"don't": "डोन्ट", "doesn't": "डज़न्ट", "didn't": "डिडन्ट",
	"won't": "वोन्ट", "can't": "कान्ट", "isn't": "इज़न्ट",
	"aren't": "आरन्ट", "wasn't": "वॉज़न्ट", "weren't": "वरन्ट",
	"i'm": "आइम", "you're": "यूआर", "we're": "वीआर",
	"they're": "देयर", "it's": "इट्स", "that's": "दैट्स",
	"what's": "व्हाट्स", "where's": "व्हेयर्स", "who's": "हूज़",

	// Suffixes
	"ing": "इंग", "tion": "शन", "sion": "शन", "er": "र", "ed": "ड",
	"ly": "ली", "ty": "टी", "ry": "री", "al": "ल", "le": "ल",
	"ment": "मेंट", "ness": "नेस", "able": "एबल", "ible": "इबल",
}
