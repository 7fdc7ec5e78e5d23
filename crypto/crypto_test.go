package crypto

import (
	"bytes"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	msg := []byte("open escrow")
	msg2 := []byte("cancel escrow")

	sig, err := private.Sign(msg)
	require.NoError(t, err)
	sig2, err := private.Sign(msg2)
	require.NoError(t, err)

	bz, err := proto.Marshal(sig)
	require.NoError(t, err)
	bz2, err := proto.Marshal(sig2)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(bz, bz2))

	assert.True(t, public.Verify(msg, sig))
	assert.True(t, public.Verify(msg2, sig2))
	assert.False(t, public.Verify(msg, sig2))
	assert.False(t, public.Verify(msg2, sig))
	assert.False(t, public.Verify(msg, &Signature{}))
	assert.False(t, public.Verify(msg, nil))
	assert.False(t, (&PublicKey{}).Verify(msg, sig))
}

func TestEd25519Address(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()
	empty := PublicKey{}

	assert.NoError(t, pub.Condition().Validate())
	assert.NoError(t, pub2.Condition().Validate())
	assert.False(t, pub.Condition().Equals(pub2.Condition()))
	assert.Nil(t, empty.Condition())
	assert.Nil(t, empty.Address())

	bz, err := proto.Marshal(pub)
	require.NoError(t, err)
	var read PublicKey
	require.NoError(t, proto.Unmarshal(bz, &read))
	assert.Equal(t, pub.Condition(), read.Condition())
	assert.Equal(t, pub.Address(), read.Address())
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{31}, 32)
	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.Ed25519, b.Ed25519)
	assert.Equal(t, seed, a.Ed25519[:32])

	assert.Panics(t, func() { PrivKeyEd25519FromSeed(nil) })
	assert.Panics(t, func() { PrivKeyEd25519FromSeed([]byte{0}) })
}
