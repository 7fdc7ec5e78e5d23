package orm

import (
	"encoding/binary"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// Index is a secondary index of a bucket. It is updated whenever
// the bucket content changes.
type Index interface {
	barter.QueryHandler

	// Update updates the index. It should be called when any of the bucket
	// entities has changed in the store.
	//
	// prev == nil means insert
	// save == nil means delete
	// both == nil is error
	// if both != nil and prev.Key() != save.Key() this is an error
	Update(db barter.KVStore, prev Object, save Object) error

	// Refs returns the primary keys of all entities indexed under
	// given value, ordered by primary key.
	Refs(db barter.ReadOnlyKVStore, value []byte) ([][]byte, error)
}

const idxPrefix = "_i."

// Indexer calculates the secondary index key for a given object.
// Returning a nil key excludes the object from the index.
type Indexer func(Object) ([]byte, error)

// nativeIndex stores one database entry per indexed entity. The entry key
// is composed of the index prefix, the length prefixed index value and
// the primary key, so all entities sharing an index value can be found
// with a single range iteration.
type nativeIndex struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
	refKey func([]byte) []byte
}

var _ Index = nativeIndex{}

// NewIndex constructs an index.
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
// refKey calculates the absolute dbkey for a ref
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return nativeIndex{
		name:   name,
		id:     []byte(idxPrefix + name + ":"),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

// valuePrefix returns the key prefix shared by all entries indexed under
// given value.
func (i nativeIndex) valuePrefix(value []byte) []byte {
	out := make([]byte, len(i.id)+2+len(value))
	copy(out, i.id)
	binary.BigEndian.PutUint16(out[len(i.id):], uint16(len(value)))
	copy(out[len(i.id)+2:], value)
	return out
}

func (i nativeIndex) entryKey(value, pk []byte) []byte {
	prefix := i.valuePrefix(value)
	out := make([]byte, len(prefix)+len(pk))
	copy(out, prefix)
	copy(out[len(prefix):], pk)
	return out
}

// Update implements Index.
func (i nativeIndex) Update(db barter.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev != nil && save != nil && string(prev.Key()) != string(save.Key()):
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}

	var oldVal, newVal []byte
	var err error
	if prev != nil {
		if oldVal, err = i.index(prev); err != nil {
			return err
		}
	}
	if save != nil {
		if newVal, err = i.index(save); err != nil {
			return err
		}
	}
	if prev != nil && save != nil && string(oldVal) == string(newVal) {
		return nil
	}

	if prev != nil && oldVal != nil {
		if err := db.Delete(i.entryKey(oldVal, prev.Key())); err != nil {
			return err
		}
	}
	if save == nil || newVal == nil {
		return nil
	}
	if i.unique {
		refs, err := i.Refs(db, newVal)
		if err != nil {
			return err
		}
		if len(refs) > 0 {
			return errors.Wrapf(errors.ErrDuplicate, "index %s", i.name)
		}
	}
	return db.Set(i.entryKey(newVal, save.Key()), []byte{})
}

// Refs implements Index.
func (i nativeIndex) Refs(db barter.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	prefix := i.valuePrefix(value)
	iter, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	defer iter.Release()

	var refs [][]byte
	for {
		key, _, err := iter.Next()
		if errors.ErrIteratorDone.Is(err) {
			return refs, nil
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, append([]byte(nil), key[len(prefix):]...))
	}
}

// Query returns all indexed objects for the given value. Only key queries
// are supported.
func (i nativeIndex) Query(db barter.ReadOnlyKVStore, mod string, data []byte) ([]barter.Model, error) {
	if mod != barter.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "index %s does not support mod %q", i.name, mod)
	}
	refs, err := i.Refs(db, data)
	if err != nil {
		return nil, err
	}
	var res []barter.Model
	for _, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res = append(res, barter.Pair(key, value))
	}
	return res, nil
}
