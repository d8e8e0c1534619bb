package jmdict_test

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/jmdict"
	"github.com/masmeert/wisho/pkg/testutil/fsutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY adv "adverb">
]>
<JMdict>
<entry>
<ent_seq>1005390</ent_seq>
<r_ele><reb>ざっと</reb><re_pri>spec1</re_pri></r_ele>
<sense><pos>&adv;</pos><gloss xml:lang="eng">roughly</gloss></sense>
</entry>
<entry>
<ent_seq>not-a-number</ent_seq>
<r_ele><reb>bogus</reb></r_ele>
</entry>
<entry>
<ent_seq>1000010</ent_seq>
<k_ele><keb>家族</keb><ke_pri>ichi1</ke_pri></k_ele>
<r_ele><reb>かぞく</reb><re_pri>ichi1</re_pri></r_ele>
<sense><pos>noun</pos><gloss xml:lang="eng">family</gloss></sense>
</entry>
</JMdict>`

type fakeWriter struct {
	words []dict.Word
}

func (w *fakeWriter) UpsertWord(_ context.Context, word dict.Word) error {
	w.words = append(w.words, word)
	return nil
}

func TestIngestor_Run_SkipsMalformedContinuesRun(t *testing.T) {
	t.Parallel()

	fs := fsutil.NewMemoryFS()
	require.NoError(t, afero.WriteFile(fs, "/jmdict.xml", []byte(sampleXML), 0o644))

	writer := &fakeWriter{}
	ing := &jmdict.Ingestor{FS: fs, Writer: writer, Clock: clockwork.NewFakeClock()}

	stats, err := ing.Run(context.Background(), "/jmdict.xml")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Written)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, writer.words, 2)
	assert.Equal(t, int64(1005390), writer.words[0].ID)
	assert.Equal(t, int64(1000010), writer.words[1].ID)
}

func TestIngestor_Run_MissingFileFails(t *testing.T) {
	t.Parallel()

	fs := fsutil.NewMemoryFS()
	writer := &fakeWriter{}
	ing := &jmdict.Ingestor{FS: fs, Writer: writer, Clock: clockwork.NewFakeClock()}

	_, err := ing.Run(context.Background(), "/missing.xml")
	require.Error(t, err)
}

func TestIngestor_Run_WriterFailureIsSkippedNotFatal(t *testing.T) {
	t.Parallel()

	fs := fsutil.NewMemoryFS()
	require.NoError(t, afero.WriteFile(fs, "/jmdict.xml", []byte(sampleXML), 0o644))

	writer := &failingWriter{failID: 1005390}
	ing := &jmdict.Ingestor{FS: fs, Writer: writer, Clock: clockwork.NewFakeClock()}

	stats, err := ing.Run(context.Background(), "/jmdict.xml")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Written)
	assert.Equal(t, 2, stats.Skipped)
}

type failingWriter struct {
	failID int64
}

func (w *failingWriter) UpsertWord(_ context.Context, word dict.Word) error {
	if word.ID == w.failID {
		return assert.AnError
	}
	return nil
}
