package pgstore_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/dict/pgstore"
	testsqlmock "github.com/masmeert/wisho/pkg/testutil/sqlmock"
	"github.com/stretchr/testify/require"
)

func TestStore_UpsertWord_SkipsExistingWord(t *testing.T) {
	t.Parallel()

	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT EXISTS`).WithArgs(int64(1)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	store := pgstore.New(db)
	err = store.UpsertWord(context.Background(), dict.Word{ID: 1})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpsertWord_InsertsAggregate(t *testing.T) {
	t.Parallel()

	db, mock, err := testsqlmock.NewSQLMock()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`(?s)SELECT EXISTS`).WithArgs(int64(1005390)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`(?s)INSERT INTO words`).WithArgs(int64(1005390), true).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`(?s)INSERT INTO kanjis`).WithArgs(int64(1005390), "颯と", false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`(?s)INSERT INTO readings`).WithArgs(int64(1005390), "ざっと", true, false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`(?s)INSERT INTO senses`).
		WithArgs(int64(1005390), []string{"adv"}, []string{}, []string{}, []string{}, nil).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(int64(77)))
	mock.ExpectExec(`(?s)INSERT INTO glosses`).WithArgs(int64(77), "roughly", "eng", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := pgstore.New(db)
	w := dict.Word{
		ID:       1005390,
		IsCommon: true,
		Kanji:    []dict.Kanji{{Text: "颯と"}},
		Readings: []dict.Reading{{Text: "ざっと", IsCommon: true}},
		Senses: []dict.Sense{{
			PartsOfSpeech: []dict.PartOfSpeech{dict.POSAdverb},
			Glosses:       []dict.Gloss{{Text: "roughly", Language: dict.LanguageEnglish}},
		}},
	}
	err = store.UpsertWord(context.Background(), w)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
