package app

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// CommitStore keeps two forks of the committed state. Blocks are
// delivered on one and the mempool checks run on the other, so a
// rejected check never leaks into a block. Both forks are replaced
// on every commit.
type CommitStore struct {
	committed barter.CommitKVStore
	deliver   barter.KVCacheWrap
	check     barter.KVCacheWrap
}

// NewCommitStore loads the latest version of store and panics when
// that is not possible, as the node cannot start without its state.
func NewCommitStore(store barter.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(errors.Wrap(err, "load latest version"))
	}
	cs := &CommitStore{committed: store}
	cs.fork()
	return cs
}

func (cs *CommitStore) fork() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (barter.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit writes the delivered block to the committed state, drops any
// pending check writes and forks again.
func (cs *CommitStore) Commit() (barter.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return barter.CommitID{}, errors.Wrap(err, "flush deliver")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, err
	}
	cs.fork()
	return id, nil
}

// Snapshot is a throwaway view of the committed state for queries.
// Callers must Discard it.
func (cs *CommitStore) Snapshot() barter.KVCacheWrap {
	return cs.committed.CacheWrap()
}

func (cs *CommitStore) CheckStore() barter.CacheableKVStore {
	return cs.check
}

func (cs *CommitStore) DeliverStore() barter.CacheableKVStore {
	return cs.deliver
}

// chainIDKey lives under "_bt:", the prefix of node internal data.
var chainIDKey = []byte("_bt:chainID")

// mustLoadChainID returns the stored chain id, empty before genesis.
func mustLoadChainID(kv barter.ReadOnlyKVStore) string {
	v, err := kv.Get(chainIDKey)
	if err != nil {
		panic(errors.Wrap(err, "load chain id"))
	}
	return string(v)
}

// saveChainID records the chain id once, at genesis.
func saveChainID(kv barter.KVStore, chainID string) error {
	if !barter.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	switch exists, err := kv.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case exists:
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	return errors.Wrap(kv.Set(chainIDKey, []byte(chainID)), "save chain id")
}
