package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// Sequence hands out increasing ids for the objects of one bucket.
// Ids are 8 byte big endian, so their byte order matches their
// numeric order and iteration walks a bucket in creation order.
type Sequence struct {
	key []byte
}

// NewSequence stores its counter under "_s.<bucket>:<name>", outside
// of any bucket prefix.
func NewSequence(bucket, name string) Sequence {
	return Sequence{key: []byte("_s." + bucket + ":" + name)}
}

// Next advances the counter and returns the new id. The first id is 1.
func (s Sequence) Next(db barter.KVStore) ([]byte, error) {
	n, err := s.Current(db)
	if err != nil {
		return nil, err
	}
	if n == math.MaxUint64 {
		return nil, errors.Wrap(errors.ErrOverflow, "sequence exhausted")
	}
	id := SequenceID(n + 1)
	if err := db.Set(s.key, id); err != nil {
		return nil, err
	}
	return id, nil
}

// Current returns the last id handed out, zero when none was.
func (s Sequence) Current(db barter.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrDatabase, "sequence %q holds %d bytes", s.key, len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// SequenceID encodes n the way Next does.
func SequenceID(n uint64) []byte {
	id := make([]byte, 8)
	binary.BigEndian.PutUint64(id, n)
	return id
}
