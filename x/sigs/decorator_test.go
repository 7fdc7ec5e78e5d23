package sigs

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signerHandler records the signers it sees in the context.
type signerHandler struct {
	bartertest.Handler
	seen []barter.Condition
}

func (h *signerHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Check(ctx, db, tx)
}

func (h *signerHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	h.seen = Authenticate{}.GetConditions(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestDecorator(t *testing.T) {
	const chainID = "barter-test"
	priv := crypto.GenPrivKeyEd25519()
	ctx := barter.WithChainID(context.Background(), chainID)

	signed := NewStdTx([]byte("hello"))
	sig, err := SignTx(priv, signed, chainID, 0)
	require.NoError(t, err)
	signed.Signatures = []*StdSignature{sig}

	db := store.MemStore()
	h := &signerHandler{}
	d := NewDecorator()

	res, err := d.Check(ctx, db, signed, h)
	require.NoError(t, err)
	assert.Equal(t, int64(signatureVerifyCost), res.GasPayment)
	assert.Equal(t, []barter.Condition{priv.PublicKey().Condition()}, h.seen)
	assert.True(t, Authenticate{}.HasAddress(withSigners(ctx, h.seen), priv.PublicKey().Address()))

	// the nonce was consumed by the check
	_, err = d.Deliver(ctx, db, signed, h)
	assert.True(t, ErrInvalidSequence.Is(err))

	unsigned := NewStdTx([]byte("hello"))
	_, err = d.Check(ctx, db, unsigned, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	_, err = d.AllowMissingSigs().Deliver(ctx, db, unsigned, h)
	require.NoError(t, err)
	assert.Empty(t, h.seen)
}
