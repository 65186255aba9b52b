package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreContract runs the behaviour every driver must share. newStore must
// return an empty store with its indexes in place.
func testStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("insert and find", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, Submissions, doc{ID: "a", ExamID: "e1", Flagged: true}))
		require.NoError(t, s.Insert(ctx, Submissions, doc{ID: "b", ExamID: "e2"}))
		require.NoError(t, s.Insert(ctx, Submissions, doc{ID: "c", ExamID: "e1"}))

		var all []doc
		require.NoError(t, s.Find(ctx, Submissions, nil, &all))
		assert.Equal(t, []string{"a", "b", "c"}, ids(all))

		var forExam []doc
		require.NoError(t, s.Find(ctx, Submissions, Filter{"examId": "e1"}, &forExam))
		assert.Equal(t, []string{"a", "c"}, ids(forExam))

		var flagged []doc
		require.NoError(t, s.Find(ctx, Submissions, Filter{"flagged": true}, &flagged))
		assert.Equal(t, []string{"a"}, ids(flagged))

		var none []doc
		require.NoError(t, s.Find(ctx, Exams, nil, &none))
		assert.Empty(t, none)

		var got doc
		assert.ErrorIs(t, s.FindOne(ctx, Exams, ByID("a"), &got), ErrNotFound)
	})

	t.Run("unique fields", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, Groups, doc{ID: "1", Name: "9A"}))
		assert.ErrorIs(t, s.Insert(ctx, Groups, doc{ID: "1", Name: "10B"}), ErrDuplicate)
		assert.ErrorIs(t, s.Insert(ctx, Groups, doc{ID: "2", Name: "9A"}), ErrDuplicate)

		require.NoError(t, s.Insert(ctx, Students, doc{ID: "1", Name: "9A"}))
		require.NoError(t, s.Insert(ctx, Students, doc{ID: "2", Name: "9A"}))

		require.NoError(t, s.Insert(ctx, Groups, doc{ID: "2", Name: "10B"}))
		assert.ErrorIs(t, s.Replace(ctx, Groups, "2", doc{ID: "2", Name: "9A"}), ErrDuplicate)
	})

	t.Run("insert many reports duplicates", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.InsertMany(ctx, Exams, []any{doc{ID: "x"}, doc{ID: "y"}}))
		assert.ErrorIs(t, s.InsertMany(ctx, Exams, []any{doc{ID: "z"}, doc{ID: "x"}}), ErrDuplicate)
		require.NoError(t, s.InsertMany(ctx, Exams, nil))

		var got doc
		require.NoError(t, s.FindOne(ctx, Exams, ByID("y"), &got))
		assert.Equal(t, "y", got.ID)
	})

	t.Run("replace and set fields", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, Submissions, doc{ID: "s1", Name: "old", Flagged: true}))

		assert.ErrorIs(t, s.Replace(ctx, Submissions, "missing", doc{ID: "missing"}), ErrNotFound)
		assert.ErrorIs(t, s.SetFields(ctx, Submissions, "missing", Filter{"flagged": false}), ErrNotFound)

		require.NoError(t, s.Replace(ctx, Submissions, "s1", doc{ID: "s1", Name: "new", Flagged: true}))
		require.NoError(t, s.SetFields(ctx, Submissions, "s1", Filter{"flagged": false}))
		assert.NoError(t, s.SetFields(ctx, Submissions, "s1", Filter{"flagged": false}))

		var got doc
		require.NoError(t, s.FindOne(ctx, Submissions, ByID("s1"), &got))
		assert.Equal(t, doc{ID: "s1", Name: "new", Flagged: false}, got)
	})

	t.Run("delete and count", func(t *testing.T) {
		s := newStore(t)
		for _, d := range []doc{{ID: "1", ExamID: "e1"}, {ID: "2", ExamID: "e1"}, {ID: "3", ExamID: "e2"}} {
			require.NoError(t, s.Insert(ctx, Submissions, d))
		}

		assert.ErrorIs(t, s.DeleteOne(ctx, Submissions, ByID("9")), ErrNotFound)
		require.NoError(t, s.DeleteOne(ctx, Submissions, ByID("1")))

		n, err := s.DeleteMany(ctx, Submissions, Filter{"examId": "e1"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		n, err = s.DeleteMany(ctx, Submissions, Filter{"examId": "none"})
		require.NoError(t, err)
		assert.Zero(t, n)

		count, err := s.Count(ctx, Submissions, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		count, err = s.Count(ctx, Submissions, Filter{"examId": "e2"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}
