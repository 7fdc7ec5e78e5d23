package iavl

import (
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// CommitStore manages a iavl committed state
type CommitStore struct {
	db   dbm.DB
	tree *iavl.MutableTree
	// numHistory is the number of past versions kept. Zero keeps all.
	numHistory int64
}

var _ store.CommitKVStore = CommitStore{}

const cacheSize = 10000

// NewCommitStore creates a new store with a goleveldb backing
// under the given directory.
func NewCommitStore(dir, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return CommitStore{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return NewCommitStoreFromDB(db), nil
}

// MockCommitStore creates a new in-memory store. No data is persisted.
func MockCommitStore() CommitStore {
	return NewCommitStoreFromDB(dbm.NewMemDB())
}

// NewCommitStoreFromDB wraps the given database.
func NewCommitStoreFromDB(db dbm.DB) CommitStore {
	return CommitStore{db: db, tree: iavl.NewMutableTree(db, cacheSize)}
}

// Close releases the underlying database.
func (s CommitStore) Close() {
	s.db.Close()
}

// WithHistory sets how many past versions are kept on commit.
func (s CommitStore) WithHistory(n int64) CommitStore {
	s.numHistory = n
	return s
}

// Get returns the value at last committed state
// returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	_, val := s.tree.GetVersioned(key, s.tree.Version())
	return val, nil
}

// Commit the next version to disk, and returns info
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if s.numHistory > 0 && version > s.numHistory {
		old := version - s.numHistory
		if s.tree.VersionExists(old) {
			if err := s.tree.DeleteVersion(old); err != nil {
				return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
			}
		}
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// CacheWrap wraps the working tree with a btree cache. Write on the
// returned cache moves the changes into the working tree, only Commit
// persists them.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	adapter := &adapter{tree: s.tree}
	return store.NewBTreeCacheWrap(adapter, adapter.NewBatch(), nil)
}

// adapter exposes the working state of the mutable tree as a KVStore.
type adapter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = (*adapter)(nil)

// Get returns nil iff key doesn't exist. Panics on nil key.
func (a *adapter) Get(key []byte) ([]byte, error) {
	_, val := a.tree.Get(key)
	return val, nil
}

// Has checks if a key exists. Panics on nil key.
func (a *adapter) Has(key []byte) (bool, error) {
	return a.tree.Has(key), nil
}

// Set adds a new value
func (a *adapter) Set(key, value []byte) error {
	a.tree.Set(key, value)
	return nil
}

// Delete removes from the tree
func (a *adapter) Delete(key []byte) error {
	a.tree.Remove(key)
	return nil
}

// NewBatch returns a batch that can write multiple ops atomically
func (a *adapter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(a)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (a *adapter) Iterator(start, end []byte) (store.Iterator, error) {
	return store.NewSliceIterator(a.collect(start, end, true)), nil
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (a *adapter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return store.NewSliceIterator(a.collect(start, end, false)), nil
}

func (a *adapter) collect(start, end []byte, ascending bool) []store.Model {
	var res []store.Model
	a.tree.IterateRange(start, end, ascending, func(key []byte, value []byte) bool {
		res = append(res, store.Pair(key, value))
		return false
	})
	return res
}
