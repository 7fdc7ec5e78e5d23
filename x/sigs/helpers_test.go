package sigs

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
)

// StdTx is a minimal signed transaction used in tests.
type StdTx struct {
	bartertest.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ barter.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:      bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "sigs/test"}},
		Payload: payload,
	}
}

func (tx *StdTx) Reset()         { *tx = StdTx{} }
func (tx *StdTx) String() string { return "sigs.StdTx" }
func (*StdTx) ProtoMessage()     {}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}
