package orm

import (
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketName(t *testing.T) {
	obj := NewSimpleObj(nil, &Counter{})
	assert.Panics(t, func() {
		NewBucket("l33t", obj)
	})
}

func TestBucketSaveGetDelete(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{}))

	obj, err := b.Get(db, []byte("a"))
	require.NoError(t, err)
	assert.Nil(t, obj)

	require.NoError(t, b.Save(db, newCounterObj("a", "alice", 7)))

	has, err := b.Has(db, []byte("a"))
	require.NoError(t, err)
	assert.True(t, has)

	obj, err = b.Get(db, []byte("a"))
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, []byte("a"), obj.Key())
	assert.Equal(t, int64(7), obj.Value().(*Counter).Count)

	require.NoError(t, b.Delete(db, []byte("a")))
	obj, err = b.Get(db, []byte("a"))
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketCannotSaveInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{}))

	err := b.Save(db, newCounterObj("a", "alice", -1))
	assert.True(t, errors.ErrInput.Is(err))

	err = b.Save(db, NewSimpleObj(nil, &Counter{}))
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{}))

	require.NoError(t, b.Save(db, newCounterObj("ab", "alice", 1)))
	require.NoError(t, b.Save(db, newCounterObj("ac", "alice", 2)))
	require.NoError(t, b.Save(db, newCounterObj("b", "bob", 3)))

	res, err := b.Query(db, barter.KeyQueryMod, []byte("ac"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, b.DBKey([]byte("ac")), res[0].Key)

	res, err = b.Query(db, barter.KeyQueryMod, []byte("zz"))
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = b.Query(db, barter.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, b.DBKey([]byte("ab")), res[0].Key)
	assert.Equal(t, b.DBKey([]byte("ac")), res[1].Key)

	_, err = b.Query(db, "unknown", nil)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestBucketIndex(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{})).
		WithIndex("owner", ownerIndexer, false)

	require.NoError(t, b.Save(db, newCounterObj("a", "alice", 1)))
	require.NoError(t, b.Save(db, newCounterObj("b", "alice", 2)))
	require.NoError(t, b.Save(db, newCounterObj("c", "bob", 3)))

	objs, err := b.GetIndexed(db, "owner", []byte("alice"))
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, []byte("a"), objs[0].Key())
	assert.Equal(t, []byte("b"), objs[1].Key())

	// moving an object to another owner updates the index
	require.NoError(t, b.Save(db, newCounterObj("b", "bob", 2)))
	objs, err = b.GetIndexed(db, "owner", []byte("alice"))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	objs, err = b.GetIndexed(db, "owner", []byte("bob"))
	require.NoError(t, err)
	require.Len(t, objs, 2)

	require.NoError(t, b.Delete(db, []byte("c")))
	objs, err = b.GetIndexed(db, "owner", []byte("bob"))
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, []byte("b"), objs[0].Key())

	_, err = b.GetIndexed(db, "missing", []byte("bob"))
	assert.True(t, ErrInvalidIndex.Is(err))
}

func TestBucketUniqueIndex(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{})).
		WithIndex("owner", ownerIndexer, true)

	require.NoError(t, b.Save(db, newCounterObj("a", "alice", 1)))
	err := b.Save(db, newCounterObj("b", "alice", 2))
	assert.True(t, errors.ErrDuplicate.Is(err))

	// updating the same object keeps its index entry
	require.NoError(t, b.Save(db, newCounterObj("a", "alice", 5)))
}

func TestBucketIndexQuery(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{})).
		WithIndex("owner", ownerIndexer, false)
	require.NoError(t, b.Save(db, newCounterObj("a", "alice", 1)))
	require.NoError(t, b.Save(db, newCounterObj("b", "bob", 2)))

	qr := barter.NewQueryRouter()
	b.Register("counters", qr)

	h, mod, err := qr.Route("/counters/owner")
	require.NoError(t, err)
	res, err := h.Query(db, mod, []byte("bob"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, b.DBKey([]byte("b")), res[0].Key)

	h, mod, err = qr.Route("/counters?prefix")
	require.NoError(t, err)
	assert.Equal(t, barter.PrefixQueryMod, mod)
	res, err = h.Query(db, mod, nil)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBucketParseWrongData(t *testing.T) {
	b := NewBucket("cnts", NewSimpleObj(nil, &Counter{}))
	_, err := b.Parse([]byte("a"), []byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrState.Is(err))
}
