package jmdict

import (
	"testing"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWord_ParsesCoreFields(t *testing.T) {
	t.Parallel()

	raw := xmlEntry{
		EntSeq: "1005390",
		KEle:   []xmlKEle{{Keb: "颯と", KePri: []string{"spec1"}}},
		REle:   []xmlREle{{Reb: "ざっと", RePri: []string{"spec1"}}},
		Sense: []xmlSense{{
			Pos:   []string{"adv"},
			Misc:  []string{"on-mim", "bogus-tag"},
			Gloss: []xmlGloss{{Text: " roughly ", Lang: "eng"}},
		}},
	}

	w, err := toWord(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1005390), w.ID)
	assert.True(t, w.IsCommon)
	require.Len(t, w.Kanji, 1)
	assert.Equal(t, "颯と", w.Kanji[0].Text)
	assert.True(t, w.Kanji[0].IsCommon)
	require.Len(t, w.Readings, 1)
	assert.Equal(t, "ざっと", w.Readings[0].Text)
	require.Len(t, w.Senses, 1)
	assert.Equal(t, []dict.PartOfSpeech{dict.POSAdverb}, w.Senses[0].PartsOfSpeech)
	assert.Equal(t, []dict.Misc{dict.MiscOnomatopoeic}, w.Senses[0].Miscs, "unknown misc tag dropped")
	require.Len(t, w.Senses[0].Glosses, 1)
	assert.Equal(t, "roughly", w.Senses[0].Glosses[0].Text)
	assert.Equal(t, dict.LanguageEnglish, w.Senses[0].Glosses[0].Language)
}

func TestToWord_MissingEntSeqIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := toWord(xmlEntry{EntSeq: ""})
	require.Error(t, err)
}

func TestToWord_NonNumericEntSeqIsMalformed(t *testing.T) {
	t.Parallel()

	_, err := toWord(xmlEntry{EntSeq: "not-a-number"})
	require.Error(t, err)
}

func TestToSense_GairaigoFromLSource(t *testing.T) {
	t.Parallel()

	s := toSense(xmlSense{
		LSource: []xmlLSource{{Lang: "fre"}},
		Gloss:   []xmlGloss{{Text: "example", Lang: "eng"}},
	})
	require.NotNil(t, s.Gairaigo)
	assert.Equal(t, dict.GairaigoFrench, *s.Gairaigo)
}

func TestToSense_ExamplesSplitByLanguage(t *testing.T) {
	t.Parallel()

	s := toSense(xmlSense{
		Example: []xmlExample{{
			Sentences: []xmlExSentence{
				{Lang: "jpn", Text: "猫が好きです。"},
				{Lang: "eng", Text: "I like cats."},
			},
		}},
	})
	require.Len(t, s.Examples, 1)
	assert.Equal(t, "猫が好きです。", s.Examples[0].SourceText)
	assert.Equal(t, "I like cats.", s.Examples[0].TargetText)
}
