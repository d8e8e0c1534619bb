package pgstore_test

import (
	"context"
	"testing"

	"github.com/masmeert/wisho/pkg/dict/pgstore"
	"github.com/masmeert/wisho/pkg/testutil/sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Rank_Japanese_OrdersByScoreDescending(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.NewSQLMock()
	require.NoError(t, err)
	defer db.Close()

	rows := mock.NewRows([]string{"word_id", "score"}).
		AddRow(int64(1005390), 14.0).
		AddRow(int64(2), 9.5)
	mock.ExpectPrepare(`(?s)WITH reading_stats AS`).ExpectQuery().
		WithArgs("ざっと", 200, 20).
		WillReturnRows(rows)

	store := pgstore.New(db)
	out, err := store.Rank(context.Background(), "ざっと", true, 20)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1005390), out[0].WordID)
	assert.GreaterOrEqual(t, out[0].Score, 12.5)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Rank_English_UsesFullTextPipeline(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.NewSQLMock()
	require.NoError(t, err)
	defer db.Close()

	rows := mock.NewRows([]string{"word_id", "score"}).AddRow(int64(42), 5.0)
	mock.ExpectPrepare(`(?s)WITH gloss_stats AS`).ExpectQuery().
		WithArgs("atom", 200, 20).
		WillReturnRows(rows)

	store := pgstore.New(db)
	out, err := store.Rank(context.Background(), "atom", false, 20)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(42), out[0].WordID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Rank_EmptyQuery(t *testing.T) {
	t.Parallel()

	db, _, err := sqlmock.NewSQLMock()
	require.NoError(t, err)
	defer db.Close()

	store := pgstore.New(db)
	_, err = store.Rank(context.Background(), "", true, 20)
	require.Error(t, err)
}

func TestStore_Rank_NoMatchesReturnsEmpty(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.NewSQLMock()
	require.NoError(t, err)
	defer db.Close()

	rows := mock.NewRows([]string{"word_id", "score"})
	mock.ExpectPrepare(`(?s)WITH reading_stats AS`).ExpectQuery().
		WithArgs("xyzzy", 200, 20).
		WillReturnRows(rows)

	store := pgstore.New(db)
	out, err := store.Rank(context.Background(), "xyzzy", true, 20)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
