package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestSuite provides many methods that can be called in package-specific test code.
We just customize the store being tested (pass in constructor), the rest of the
logic is generic to the KVStore interface.

It is shared between btree_test.go and iavl/adapter_test.go, but can be used
for any implementation of CacheableKVStore.
*/
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a function releasing it.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks on our cache
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("escrow"), []byte("open")
	s.AssertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("holding"), []byte("100")
	s.AssertGetHas(t, cache, k2, nil, false)
	require.NoError(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("authority"), []byte("255")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()
	s.AssertGetHas(t, base, k3, nil, false)

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())
	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v2, true)
}

// CacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func (s *TestSuite) CacheConflicts(t *testing.T) {
	ks := seqModels("key", 4)
	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []Op{SetOp(ks[1].Key, []byte("one")), SetOp(ks[2].Key, []byte("two"))},
			childOps:      []Op{SetOp(ks[1].Key, []byte("uno")), SetOp(ks[3].Key, []byte("tres")), DelOp(ks[2].Key)},
			parentQueries: []Model{Pair(ks[1].Key, []byte("one")), Pair(ks[2].Key, []byte("two")), Pair(ks[3].Key, nil)},
			childQueries:  []Model{Pair(ks[1].Key, []byte("uno")), Pair(ks[2].Key, nil), Pair(ks[3].Key, []byte("tres"))},
		},
		"delete something never written": {
			childOps:      []Op{DelOp(ks[0].Key)},
			parentQueries: []Model{Pair(ks[0].Key, nil)},
			childQueries:  []Model{Pair(ks[0].Key, nil)},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			for _, op := range tc.parentOps {
				require.NoError(t, op.Apply(parent))
			}
			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				require.NoError(t, op.Apply(child))
			}
			for _, q := range tc.parentQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, child, q.Key, q.Value, q.Value != nil)
			}

			// write child to parent and make sure it also shows proper data
			require.NoError(t, child.Write())
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, parent, q.Key, q.Value, q.Value != nil)
			}
		})
	}
}

// IteratorWithConflicts makes sure that iterating over a cache combines
// parent and child data in key order, with the child shadowing the parent.
func (s *TestSuite) IteratorWithConflicts(t *testing.T) {
	ms := seqModels("item", 6)
	a, b, c, d := ms[0], ms[1], ms[2], ms[3]
	a2 := Pair(a.Key, []byte("a2"))
	b2 := Pair(b.Key, []byte("b2"))

	expect0 := []Model{a, b, c}
	expect1 := []Model{a2, b2, c, d}

	cases := map[string]iterCase{
		"iterate in child only": {
			child: makeSetOps(a, b, c),
			queries: []rangeQuery{
				{nil, nil, false, expect0},
				{expect0[1].Key, expect0[2].Key, false, expect0[1:2]},
				{nil, nil, true, reverse(expect0)},
			},
		},
		"iterate over parent only": {
			pre: makeSetOps(a, b, c),
			queries: []rangeQuery{
				{nil, nil, false, expect0},
				{expect0[1].Key, nil, false, expect0[1:]},
				{nil, expect0[2].Key, true, reverse(expect0[:2])},
			},
		},
		"simple combination": {
			pre:   makeSetOps(a, c),
			child: makeSetOps(b),
			queries: []rangeQuery{
				{nil, nil, false, expect0},
				{expect0[1].Key, expect0[2].Key, false, expect0[1:2]},
				{nil, nil, true, reverse(expect0)},
			},
		},
		"overwrite data should show child data": {
			pre:   makeSetOps(a, b, c),
			child: makeSetOps(a2, b2, d),
			queries: []rangeQuery{
				{nil, nil, false, expect1},
				{expect1[1].Key, expect1[3].Key, false, expect1[1:3]},
				{nil, nil, true, reverse(expect1)},
			},
		},
		"deleted entries are skipped": {
			pre:   makeSetOps(a, c, d),
			child: makeDelOps(a, b, d),
			queries: []rangeQuery{
				{nil, nil, false, []Model{c}},
				{nil, c.Key, false, nil},
				{nil, nil, true, []Model{c}},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()
			tc.verify(t, base)
		})
	}
}

func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

// seqModels returns count models with ascending keys.
func seqModels(prefix string, count int) []Model {
	res := make([]Model, count)
	for i := range res {
		res[i] = Pair([]byte(fmt.Sprintf("%s:%03d", prefix, i)), []byte(fmt.Sprintf("value %d", i)))
	}
	return res
}

// iterCase is a test case for iteration
type iterCase struct {
	pre     []Op
	child   []Op
	queries []rangeQuery
}

func (i iterCase) verify(t testing.TB, base CacheableKVStore) {
	t.Helper()
	for _, op := range i.pre {
		require.NoError(t, op.Apply(base))
	}

	child := base.CacheWrap()
	for _, op := range i.child {
		require.NoError(t, op.Apply(child))
	}

	for _, q := range i.queries {
		var iter Iterator
		var err error
		if q.reverse {
			iter, err = child.ReverseIterator(q.start, q.end)
		} else {
			iter, err = child.Iterator(q.start, q.end)
		}
		require.NoError(t, err)

		for n, want := range q.expected {
			key, value, err := iter.Next()
			require.NoError(t, err)
			if !bytes.Equal(want.Key, key) {
				t.Fatalf("want key %X at %d, got %X", want.Key, n, key)
			}
			assert.Equal(t, want.Value, value)
		}
		_, _, err = iter.Next()
		if !errors.ErrIteratorDone.Is(err) {
			t.Fatalf("want ErrIteratorDone, got %+v", err)
		}
		iter.Release()
	}
}

// range query checks the results of iteration
type rangeQuery struct {
	start    []byte
	end      []byte
	reverse  bool
	expected []Model
}

// reverse returns a copy of the slice with elements in reverse order
func reverse(models []Model) []Model {
	max := len(models)
	res := make([]Model, max)
	for i := 0; i < max; i++ {
		res[i] = models[max-1-i]
	}
	return res
}

// sortModels returns a copy of the models sorted by key
func sortModels(models []Model) []Model {
	res := make([]Model, len(models))
	copy(res, models)
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i].Key, res[j].Key) < 0
	})
	return res
}

func makeSetOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = SetOp(m.Key, m.Value)
	}
	return res
}

func makeDelOps(ms ...Model) []Op {
	res := make([]Op, len(ms))
	for i, m := range ms {
		res[i] = DelOp(m.Key)
	}
	return res
}
