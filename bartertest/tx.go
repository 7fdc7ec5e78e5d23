package bartertest

import (
	"github.com/iov-one/barter"
)

// Tx represents a barter transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg barter.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ barter.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (barter.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Reset()         { *tx = Tx{} }
func (tx *Tx) String() string { return "bartertest.Tx" }
func (*Tx) ProtoMessage()     {}

// Msg represents a barter message that is routed by path only.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ barter.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "bartertest.Msg " + m.RoutePath }
func (*Msg) ProtoMessage()    {}
