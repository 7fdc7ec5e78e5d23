package bartertest

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/orm"
)

// NewKey returns a fresh ed25519 signer.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a fresh key.
func NewCondition() barter.Condition {
	return NewKey().PublicKey().Condition()
}

// SequenceID is the n-th id handed out by an orm sequence.
func SequenceID(n uint64) []byte {
	return orm.SequenceID(n)
}
