package orm

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// prefixRange turns a prefix into (start, end) to create
// an iterator
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

// queryPrefix returns all models stored under keys starting with prefix.
func queryPrefix(db barter.ReadOnlyKVStore, prefix []byte) ([]barter.Model, error) {
	iter, err := db.Iterator(prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(iter)
}

// ConsumeIterator will read all remaining data into an
// array and release the iterator
func ConsumeIterator(iter barter.Iterator) ([]barter.Model, error) {
	defer iter.Release()

	var res []barter.Model
	for {
		key, value, err := iter.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, barter.Pair(key, value))
	}
}
