package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter/errors"
)

// SimpleObj is the Object every bucket in this module stores: a
// generated model under a bucket relative key.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ Object = (*SimpleObj)(nil)

// NewSimpleObj pairs a key with a model. A nil key is allowed on
// bucket templates, which only serve for Clone.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

func (o SimpleObj) Value() Model {
	return o.value
}

// Validate requires both parts and reports a bad model under the
// "Value" field.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	}
	return errors.Field("Value", o.value.Validate(), "invalid value")
}

// Clone returns an object with the same key and a zeroed model of the
// same type, ready for proto.Unmarshal.
func (o *SimpleObj) Clone() Object {
	blank := proto.Clone(o.value).(Model)
	blank.Reset()
	var key []byte
	if len(o.key) != 0 {
		key = append(key, o.key...)
	}
	return &SimpleObj{key: key, value: blank}
}
