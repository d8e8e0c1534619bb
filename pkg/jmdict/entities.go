package jmdict

// entityMap resolves JMdict's DTD entity abbreviations (pos/field/misc/
// dialect tags, written in the XML as e.g. "&adj-i;") to their expanded
// text, the way the JMdict DTD itself defines them. Grounded on
// other_examples' wedgeV-jmdict parser, trimmed to the tags this service's
// enums recognize; any entity not listed here still decodes under
// Decoder.Strict = false, it just won't expand to readable text (harmless,
// since permissive enum parsing drops anything it doesn't recognize
// anyway).
var entityMap = map[string]string{
	"MA":     "martial arts term",
	"X":      "rude or x-rated term",
	"abbr":   "abbreviation",
	"adj-i":  "adjective (keiyoushi)",
	"adj-na": "adjectival nouns or quasi-adjectives (keiyodoshi)",
	"adj-no": "nouns which may take the genitive case particle 'no'",
	"adv":    "adverb (fukushi)",
	"aux-v":  "auxiliary verb",
	"conj":   "conjunction",
	"exp":    "expressions (phrases, clauses, etc.)",
	"int":    "interjection",
	"pref":   "prefix",
	"suf":    "suffix",
	"v1":     "Ichidan verb",
	"v5k":    "Godan verb with 'ku' ending",
	"v5s":    "Godan verb with 'su' ending",
	"v5u":    "Godan verb with 'u' ending",
	"vs":     "noun or participle which takes the aux. verb suru",
	"vk":     "Kuru verb - special class",
	"pn":     "pronoun",
	"ctr":    "counter",
	"prt":    "particle",
	"med":    "medicine",
	"comp":   "computing",
	"mil":    "military",
	"bus":    "business",
	"law":    "law",
	"ling":   "linguistics",
	"math":   "mathematics",
	"biol":   "biology",
	"chem":   "chemistry",
	"finc":   "finance",
	"food":   "food, cooking",
	"sports": "sports",
	"ksb":    "Kansai-ben",
	"kyb":    "Kyoto-ben",
	"osb":    "Osaka-ben",
	"thb":    "Tohoku-ben",
	"hob":    "Hokkaido-ben",
	"kyu":    "Kyuushuu-ben",
	"rkb":    "Ryuukyuu-ben",
	"tsb":    "Tosa-ben",
	"tsug":   "Tsugaru-ben",
	"arch":   "archaic",
	"chn":    "children's language",
	"col":    "colloquialism",
	"derog":  "derogatory",
	"hon":    "honorific or respectful (sonkeigo) language",
	"hum":    "humble (kenjougo) language",
	"id":     "idiomatic expression",
	"joc":    "jocular, humorous term",
	"male":   "male term or language",
	"fem":    "female term or language",
	"obs":    "obsolete term",
	"on-mim": "onomatopoeic or mimetic word",
	"poet":   "poetical term",
	"pol":    "polite (teineigo) language",
	"proverb": "proverb",
	"rare":   "rare term",
	"sens":   "sensitive",
	"sl":     "slang",
	"vulg":   "vulgar expression or word",
	"yoji":   "yojijukugo",
	"quote":  "\"",
}
