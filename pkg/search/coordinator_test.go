package search_test

import (
	"context"
	"testing"

	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	ranked       []dict.RankedID
	details      map[int64]dict.ResultRow
	rankErr      error
	hydrateCalls int
}

func (f *fakeStore) Rank(_ context.Context, _ string, _ bool, limit int) ([]dict.RankedID, error) {
	if f.rankErr != nil {
		return nil, f.rankErr
	}
	if limit < len(f.ranked) {
		return f.ranked[:limit], nil
	}
	return f.ranked, nil
}

func (f *fakeStore) Hydrate(_ context.Context, wordIDs []int64, _ int) (map[int64]dict.ResultRow, error) {
	f.hydrateCalls++
	out := make(map[int64]dict.ResultRow, len(wordIDs))
	for _, id := range wordIDs {
		if row, ok := f.details[id]; ok {
			out[id] = row
		}
	}
	return out, nil
}

func (f *fakeStore) SenseExamples(context.Context, []int64) (map[int64][]dict.SenseExample, error) {
	return nil, nil
}

func (f *fakeStore) UpsertWord(context.Context, dict.Word) error { return nil }

func TestCoordinator_Search_EmptyQueryShortCircuits(t *testing.T) {
	t.Parallel()

	c := search.NewCoordinator(&fakeStore{})
	_, err := c.Search(context.Background(), "   ", 20, 0)
	require.Error(t, err)
}

func TestCoordinator_Search_NoRankedResultsSkipsHydration(t *testing.T) {
	t.Parallel()

	store := &fakeStore{ranked: nil}
	c := search.NewCoordinator(store)
	rows, err := c.Search(context.Background(), "xyzzy", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, store.hydrateCalls)
}

func TestCoordinator_Search_PreservesRankOrder(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		ranked: []dict.RankedID{
			{WordID: 3, Score: 9.0},
			{WordID: 1, Score: 5.0},
			{WordID: 2, Score: 2.0},
		},
		details: map[int64]dict.ResultRow{
			1: {ID: 1, Kanji: []string{"家"}},
			2: {ID: 2, Kanji: []string{"家族"}},
			3: {ID: 3, Kanji: []string{"三"}},
		},
	}
	c := search.NewCoordinator(store)
	rows, err := c.Search(context.Background(), "家", 20, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(3), rows[0].ID)
	assert.Equal(t, int64(1), rows[1].ID)
	assert.Equal(t, int64(2), rows[2].ID)
	assert.Equal(t, 9.0, rows[0].Score)
}

func TestCoordinator_Search_OffsetAndLimit(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		ranked: []dict.RankedID{
			{WordID: 1, Score: 9.0},
			{WordID: 2, Score: 8.0},
			{WordID: 3, Score: 7.0},
			{WordID: 4, Score: 6.0},
		},
		details: map[int64]dict.ResultRow{
			1: {ID: 1}, 2: {ID: 2}, 3: {ID: 3}, 4: {ID: 4},
		},
	}
	c := search.NewCoordinator(store)
	rows, err := c.Search(context.Background(), "foo", 2, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, int64(3), rows[1].ID)
}

func TestCoordinator_Search_OffsetPastEndReturnsEmpty(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		ranked: []dict.RankedID{{WordID: 1, Score: 1.0}},
	}
	c := search.NewCoordinator(store)
	rows, err := c.Search(context.Background(), "foo", 20, 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCoordinator_Search_MissingHydrationDetailsStillReturnsRow(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		ranked:  []dict.RankedID{{WordID: 42, Score: 1.0}},
		details: map[int64]dict.ResultRow{},
	}
	c := search.NewCoordinator(store)
	rows, err := c.Search(context.Background(), "foo", 20, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0].ID)
	assert.Equal(t, 1.0, rows[0].Score)
}
