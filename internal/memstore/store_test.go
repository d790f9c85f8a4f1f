package memstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Title string
}

func newStore() *Store[item] {
	return New(func(i item) string { return i.ID }, Unique(func(i item) string { return i.Title }))
}

func TestStore_CRUD(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, item{ID: "1", Title: "first"}))
	require.NoError(t, s.Insert(ctx, item{ID: "2", Title: "second"}))
	require.NoError(t, s.Insert(ctx, item{ID: "3", Title: "third"}))

	got, err := s.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)

	got, err = s.GetUnique(ctx, "third")
	require.NoError(t, err)
	assert.Equal(t, "3", got.ID)

	require.NoError(t, s.Replace(ctx, item{ID: "2", Title: "renamed"}))
	_, err = s.GetUnique(ctx, "second")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "1"))
	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "2", Title: "renamed"}, {ID: "3", Title: "third"}}, all)
	assert.Equal(t, 2, s.Len())

	assert.ErrorIs(t, s.Delete(ctx, "1"), ErrNotFound)
	assert.ErrorIs(t, s.Replace(ctx, item{ID: "9"}), ErrNotFound)
}

func TestStore_UniqueKey(t *testing.T) {
	s := newStore()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, item{ID: "1", Title: "same"}))
	require.NoError(t, s.Insert(ctx, item{ID: "2", Title: "other"}))

	assert.ErrorIs(t, s.Insert(ctx, item{ID: "3", Title: "same"}), ErrDuplicate)
	assert.ErrorIs(t, s.Insert(ctx, item{ID: "1", Title: "new"}), ErrDuplicate)
	assert.ErrorIs(t, s.Replace(ctx, item{ID: "2", Title: "same"}), ErrDuplicate)

	// The failed rename left the old title claimed by its owner.
	got, err := s.GetUnique(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	// A freed title can be reused.
	require.NoError(t, s.Delete(ctx, "1"))
	assert.NoError(t, s.Insert(ctx, item{ID: "4", Title: "same"}))
}

func TestStore_FindOne(t *testing.T) {
	s := New(func(i item) string { return i.ID })
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, item{ID: "a", Title: "x"}))
	require.NoError(t, s.Insert(ctx, item{ID: "b", Title: "x"}))

	got, err := s.FindOne(ctx, func(i item) bool { return i.Title == "x" })
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	_, err = s.FindOne(ctx, func(i item) bool { return i.Title == "y" })
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetUnique(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ConcurrentUniqueInsert(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	var ok atomic.Int32
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Insert(ctx, item{ID: string(rune('a' + i)), Title: "contested"}) == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, 1, s.Len())
}
