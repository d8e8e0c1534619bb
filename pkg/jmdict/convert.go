package jmdict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/masmeert/wisho/pkg/dict"
)

// parseOrNone converts raw tag text into T using known, returning the zero
// value and false when raw isn't recognized. Matches original_source's
// permissive enum parsing: an unrecognized JMdict tag is dropped, it never
// fails ingestion of the entry it belongs to.
func parseOrNone[T ~string](raw string, known map[T]struct{}) (T, bool) {
	if tag, ok := entityTags[raw]; ok {
		raw = tag
	}
	v := T(raw)
	if _, ok := known[v]; ok {
		return v, true
	}
	return "", false
}

// entityTags maps each expansion in entityMap back to its entity name, so a
// tag written as "&adv;" in the XML is matched by its short name.
var entityTags = func() map[string]string {
	m := make(map[string]string, len(entityMap))
	for name, text := range entityMap {
		m[text] = name
	}
	return m
}()

var knownPOS = knownSet(
	dict.POSNoun, dict.POSAdjI, dict.POSAdjNa, dict.POSAdjNo, dict.POSAdverb,
	dict.POSAuxVerb, dict.POSConjunction, dict.POSExpression, dict.POSInterjection,
	dict.POSPrefix, dict.POSSuffix, dict.POSVerbIchidan, dict.POSVerbGodan5K,
	dict.POSVerbGodan5S, dict.POSVerbGodan5U, dict.POSVerbSuru, dict.POSVerbKuru,
	dict.POSPronoun, dict.POSCounter, dict.POSParticle,
)

var knownFields = knownSet(
	dict.FieldMedicine, dict.FieldComputing, dict.FieldMilitary, dict.FieldBusiness,
	dict.FieldLaw, dict.FieldLinguistics, dict.FieldMathematics, dict.FieldBiology,
	dict.FieldChemistry, dict.FieldFinance, dict.FieldFood, dict.FieldSports,
)

var knownDialects = knownSet(
	dict.DialectKansai, dict.DialectKyoto, dict.DialectOsaka, dict.DialectTohoku,
	dict.DialectHokkaido, dict.DialectKyushu, dict.DialectRyukyu, dict.DialectTosa,
	dict.DialectTsugaru,
)

var knownMiscs = knownSet(
	dict.MiscAbbreviation, dict.MiscArchaic, dict.MiscChildLanguage, dict.MiscColloquial,
	dict.MiscDerogatory, dict.MiscHonorific, dict.MiscHumble, dict.MiscIdiomatic,
	dict.MiscJoke, dict.MiscMale, dict.MiscFemale, dict.MiscObsolete, dict.MiscOnomatopoeic,
	dict.MiscPoetical, dict.MiscPolite, dict.MiscProverb, dict.MiscRare, dict.MiscSensitive,
	dict.MiscSlang, dict.MiscVulgar, dict.MiscYojijukugo,
)

var knownGairaigo = knownSet(
	dict.GairaigoEnglish, dict.GairaigoFrench, dict.GairaigoGerman, dict.GairaigoDutch,
	dict.GairaigoPortuguese, dict.GairaigoSpanish, dict.GairaigoItalian,
	dict.GairaigoRussian, dict.GairaigoChinese,
)

func knownSet[T ~string](vs ...T) map[T]struct{} {
	m := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return m
}

// entSeqToID parses an <ent_seq> into the Word's integer id.
func entSeqToID(entSeq string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(entSeq), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid ent_seq %q: %v", dict.ErrMalformedEntry, entSeq, err)
	}
	return id, nil
}

// toWord converts one decoded xmlEntry into a dict.Word, applying
// permissive enum parsing and the commonality rule. Returns
// ErrMalformedEntry if ent_seq is missing or unparseable; every other
// irregularity (unknown enum tag, unparseable priority token) is dropped
// silently rather than failing the entry.
func toWord(e xmlEntry) (dict.Word, error) {
	id, err := entSeqToID(e.EntSeq)
	if err != nil {
		return dict.Word{}, err
	}

	var allPriorities []dict.Priority

	kanji := make([]dict.Kanji, 0, len(e.KEle))
	for _, k := range e.KEle {
		if k.Keb == "" {
			continue
		}
		prios := parsePriorities(k.KePri)
		allPriorities = append(allPriorities, prios...)
		kanji = append(kanji, dict.Kanji{
			Text:     k.Keb,
			IsCommon: dict.IsCommon(prios),
		})
	}

	readings := make([]dict.Reading, 0, len(e.REle))
	for _, r := range e.REle {
		if r.Reb == "" {
			continue
		}
		prios := parsePriorities(r.RePri)
		allPriorities = append(allPriorities, prios...)
		readings = append(readings, dict.Reading{
			Text:     r.Reb,
			IsCommon: dict.IsCommon(prios),
			NoKanji:  r.ReNokanji != nil,
		})
	}

	senses := make([]dict.Sense, 0, len(e.Sense))
	for _, s := range e.Sense {
		senses = append(senses, toSense(s))
	}

	return dict.Word{
		ID:       id,
		IsCommon: dict.IsCommon(allPriorities),
		Kanji:    kanji,
		Readings: readings,
		Senses:   senses,
	}, nil
}

func toSense(s xmlSense) dict.Sense {
	sense := dict.Sense{}

	for _, raw := range s.Pos {
		if v, ok := parseOrNone(raw, knownPOS); ok {
			sense.PartsOfSpeech = append(sense.PartsOfSpeech, v)
		}
	}
	for _, raw := range s.Field {
		if v, ok := parseOrNone(raw, knownFields); ok {
			sense.Fields = append(sense.Fields, v)
		}
	}
	for _, raw := range s.Dial {
		if v, ok := parseOrNone(raw, knownDialects); ok {
			sense.Dialects = append(sense.Dialects, v)
		}
	}
	for _, raw := range s.Misc {
		if v, ok := parseOrNone(raw, knownMiscs); ok {
			sense.Miscs = append(sense.Miscs, v)
		}
	}
	for _, ls := range s.LSource {
		if v, ok := parseOrNone(ls.Lang, knownGairaigo); ok {
			g := v
			sense.Gairaigo = &g
			break
		}
	}

	for _, g := range s.Gloss {
		lang := dict.Language(g.Lang)
		if lang == "" {
			lang = dict.LanguageEnglish
		}
		sense.Glosses = append(sense.Glosses, dict.Gloss{
			Text:      strings.TrimSpace(g.Text),
			Language:  lang,
			GlossType: dict.GlossType(g.GType),
		})
	}

	for _, ex := range s.Example {
		var source, target string
		for _, sent := range ex.Sentences {
			if sent.Lang == "jpn" {
				source = sent.Text
			} else {
				target = sent.Text
			}
		}
		if source == "" && target == "" {
			continue
		}
		sense.Examples = append(sense.Examples, dict.SenseExample{
			SourceText: source,
			TargetText: target,
		})
	}

	return sense
}
