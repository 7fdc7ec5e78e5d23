package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter/errors"
)

// Counter is a minimal model used across orm tests.
type Counter struct {
	Owner []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Count int64  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *Counter) Reset()         { *m = Counter{} }
func (m *Counter) String() string { return proto.CompactTextString(m) }
func (*Counter) ProtoMessage()    {}

func (m *Counter) Validate() error {
	if m.Count < 0 {
		return errors.Wrap(errors.ErrInput, "negative count")
	}
	return nil
}

func newCounterObj(key string, owner string, count int64) Object {
	return NewSimpleObj([]byte(key), &Counter{Owner: []byte(owner), Count: count})
}

func ownerIndexer(obj Object) ([]byte, error) {
	c, ok := obj.Value().(*Counter)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return c.Owner, nil
}
