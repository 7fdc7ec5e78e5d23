package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/barter/errors"
)

// mergedIterator walks the items cached in a btree together with the
// iterator of the backing store. Cached items shadow the parent ones and
// deleted items hide them.
type mergedIterator struct {
	local     []btree.Item
	idx       int
	parent    Iterator
	ascending bool

	// peeked parent entry
	pKey, pValue []byte
	pHas         bool
	pDone        bool
}

var _ Iterator = (*mergedIterator)(nil)

func newMergedIterator(local []btree.Item, parent Iterator, ascending bool) *mergedIterator {
	return &mergedIterator{
		local:     local,
		parent:    parent,
		ascending: ascending,
	}
}

func (m *mergedIterator) peekParent() error {
	if m.pHas || m.pDone {
		return nil
	}
	key, value, err := m.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		m.pDone = true
		return nil
	case err != nil:
		return err
	}
	m.pKey, m.pValue, m.pHas = key, value, true
	return nil
}

// Next implements Iterator.
func (m *mergedIterator) Next() (key, value []byte, err error) {
	for {
		if err := m.peekParent(); err != nil {
			return nil, nil, err
		}
		hasLocal := m.idx < len(m.local)

		switch {
		case !hasLocal && !m.pHas:
			return nil, nil, errors.ErrIteratorDone
		case !hasLocal:
			m.pHas = false
			return m.pKey, m.pValue, nil
		case m.pHas:
			cmp := bytes.Compare(m.local[m.idx].(keyer).Key(), m.pKey)
			if !m.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				m.pHas = false
				return m.pKey, m.pValue, nil
			}
			if cmp == 0 {
				// Local value overwrites the parent one.
				m.pHas = false
			}
		}

		item := m.local[m.idx]
		m.idx++
		if set, ok := item.(setItem); ok {
			return set.key, set.value, nil
		}
		// deleted item, continue with the next one
	}
}

// Release implements Iterator.
func (m *mergedIterator) Release() {
	m.parent.Release()
	m.local = nil
}

////////////////////////////////////////////////
// Slice -> Iterator

// SliceIterator wraps an Iterator over a slice of models
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{
		data: data,
	}
}

// Next implements Iterator.
func (s *SliceIterator) Next() (key, value []byte, err error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

// Release implements Iterator.
func (s *SliceIterator) Release() {
	s.data = nil
}
