package dict

// PartOfSpeech, Field, Dialect, Misc, GlossType, Language, and Gairaigo are
// modeled as distinct string types, one per JMdict tag category, matching
// the modeling style of other_examples' jrockway-edict Detail enum while
// keeping each category independently parseable the way the pack's Python
// original does (edict_parser/types).
type (
	PartOfSpeech string
	Field        string
	Dialect      string
	Misc         string
	GlossType    string
	Language     string
	Gairaigo     string
)

// Known part-of-speech tags. Not exhaustive of the JMdict DTD; entries with
// a tag outside this set are dropped during parsing rather than rejected,
// per the permissive-parse policy (pkg/jmdict.parseOrNone).
const (
	POSNoun       PartOfSpeech = "noun"
	POSAdjI       PartOfSpeech = "adj-i"
	POSAdjNa      PartOfSpeech = "adj-na"
	POSAdjNo      PartOfSpeech = "adj-no"
	POSAdverb     PartOfSpeech = "adv"
	POSAuxVerb    PartOfSpeech = "aux-v"
	POSConjunction PartOfSpeech = "conj"
	POSExpression PartOfSpeech = "exp"
	POSInterjection PartOfSpeech = "int"
	POSPrefix     PartOfSpeech = "pref"
	POSSuffix     PartOfSpeech = "suf"
	POSVerbIchidan PartOfSpeech = "v1"
	POSVerbGodan5K PartOfSpeech = "v5k"
	POSVerbGodan5S PartOfSpeech = "v5s"
	POSVerbGodan5U PartOfSpeech = "v5u"
	POSVerbSuru    PartOfSpeech = "vs"
	POSVerbKuru    PartOfSpeech = "vk"
	POSPronoun     PartOfSpeech = "pn"
	POSCounter     PartOfSpeech = "ctr"
	POSParticle    PartOfSpeech = "prt"
)

// Known field-of-application tags (med, comp, mil, ...).
const (
	FieldMedicine  Field = "med"
	FieldComputing Field = "comp"
	FieldMilitary  Field = "mil"
	FieldBusiness  Field = "bus"
	FieldLaw       Field = "law"
	FieldLinguistics Field = "ling"
	FieldMathematics Field = "math"
	FieldBiology   Field = "biol"
	FieldChemistry Field = "chem"
	FieldFinance   Field = "finc"
	FieldFood      Field = "food"
	FieldSports    Field = "sports"
)

// Known dialect tags.
const (
	DialectKansai  Dialect = "ksb"
	DialectKyoto   Dialect = "kyb"
	DialectOsaka   Dialect = "osb"
	DialectTohoku  Dialect = "thb"
	DialectHokkaido Dialect = "hob"
	DialectKyushu  Dialect = "kyu"
	DialectRyukyu  Dialect = "rkb"
	DialectTosa    Dialect = "tsb"
	DialectTsugaru Dialect = "tsug"
)

// Known miscellaneous-usage tags.
const (
	MiscAbbreviation Misc = "abbr"
	MiscArchaic      Misc = "arch"
	MiscChildLanguage Misc = "chn"
	MiscColloquial   Misc = "col"
	MiscDerogatory   Misc = "derog"
	MiscHonorific    Misc = "hon"
	MiscHumble       Misc = "hum"
	MiscIdiomatic    Misc = "id"
	MiscJoke         Misc = "joc"
	MiscMale         Misc = "male"
	MiscFemale       Misc = "fem"
	MiscObsolete     Misc = "obs"
	MiscOnomatopoeic Misc = "on-mim"
	MiscPoetical     Misc = "poet"
	MiscPolite       Misc = "pol"
	MiscProverb      Misc = "proverb"
	MiscRare         Misc = "rare"
	MiscSensitive    Misc = "sens"
	MiscSlang        Misc = "sl"
	MiscVulgar       Misc = "vulg"
	MiscYojijukugo   Misc = "yoji"
)

// GlossType classifies a single gloss (plain meaning, literal
// translation, figurative sense, or explanation), matching JMdict's
// g_type attribute.
const (
	GlossTypePlain      GlossType = ""
	GlossTypeLiteral    GlossType = "lit"
	GlossTypeFigurative GlossType = "fig"
	GlossTypeExplanation GlossType = "expl"
	GlossTypeTrademark  GlossType = "tm"
)

// Language is an ISO 639-2 code as found on gloss/lsource xml:lang
// attributes. JMdict defaults to "eng" when the attribute is absent.
const LanguageEnglish Language = "eng"

// Gairaigo identifies the loanword source language of a Sense, parsed from
// <lsource>'s lang attribute when the sense is a gairaigo (loanword) sense.
const (
	GairaigoEnglish  Gairaigo = "eng"
	GairaigoFrench   Gairaigo = "fre"
	GairaigoGerman   Gairaigo = "ger"
	GairaigoDutch    Gairaigo = "dut"
	GairaigoPortuguese Gairaigo = "por"
	GairaigoSpanish  Gairaigo = "spa"
	GairaigoItalian  Gairaigo = "ita"
	GairaigoRussian  Gairaigo = "rus"
	GairaigoChinese  Gairaigo = "chi"
)

// PriorityType is the category prefix of a priority token (news1, ichi2, ...).
type PriorityType string

const (
	PriorityNews PriorityType = "news"
	PriorityIchi PriorityType = "ichi"
	PrioritySpec PriorityType = "spec"
	PriorityGai  PriorityType = "gai"
	PriorityNf   PriorityType = "nf"
)

// Priority is one parsed priority token, e.g. "news1" -> {PriorityNews, 1}.
type Priority struct {
	Type  PriorityType
	Level int
}

// IsCommon implements the commonality rule: ichi<=2, news<=3, or spec==1
// marks a word as common. Matches original_source's
// Entry.determine_commonality exactly.
func IsCommon(priorities []Priority) bool {
	for _, p := range priorities {
		switch p.Type {
		case PriorityIchi:
			if p.Level <= 2 {
				return true
			}
		case PriorityNews:
			if p.Level <= 3 {
				return true
			}
		case PrioritySpec:
			if p.Level == 1 {
				return true
			}
		}
	}
	return false
}
