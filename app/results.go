package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// SplitResults turns query hits into the two parallel result sets of
// an ABCI query response, keys in one and values in the other.
func SplitResults(models []barter.Model) (keys, values *ResultSet) {
	keys = &ResultSet{Results: make([][]byte, len(models))}
	values = &ResultSet{Results: make([][]byte, len(models))}
	for i, m := range models {
		keys.Results[i] = m.Key
		values.Results[i] = m.Value
	}
	return keys, values
}

// JoinResults pairs the sets of a query response back into hits.
func JoinResults(keys, values *ResultSet) ([]barter.Model, error) {
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys for %d values",
			len(keys.Results), len(values.Results))
	}
	models := make([]barter.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = barter.Pair(k, values.Results[i])
	}
	return models, nil
}

// UnmarshalOneResult decodes the first value of a serialized result
// set into dst. An empty set leaves dst untouched.
func UnmarshalOneResult(bz []byte, dst proto.Message) error {
	var set ResultSet
	if err := proto.Unmarshal(bz, &set); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if len(set.Results) == 0 {
		return nil
	}
	if err := proto.Unmarshal(set.Results[0], dst); err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	return nil
}
