package escrow

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAuthority(t *testing.T) {
	cond, salt := FindAuthority()
	again, againSalt := FindAuthority()
	assert.Equal(t, cond, again)
	assert.Equal(t, salt, againSalt)
	assert.Equal(t, ProtocolAuthority(), cond)
	assert.Equal(t, CanonicalSalt(), salt)

	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "escrow", ext)
	assert.Equal(t, "vault", typ)
	require.NoError(t, cond.Validate())
	assert.Equal(t, "escrow/vault/", cond.String()[:len("escrow/vault/")])
	assert.False(t, onCurve(data), "authority must not be a public key")

	// every salt above the canonical one derives a public key
	for s := 255; s > int(salt); s-- {
		_, err := DeriveAuthority(uint8(s))
		assert.True(t, errors.ErrInput.Is(err), "salt %d: %+v", s, err)
	}
}

func TestVerifyAuthority(t *testing.T) {
	cond, err := VerifyAuthority(uint32(CanonicalSalt()))
	require.NoError(t, err)
	assert.Equal(t, ProtocolAuthority().Address(), cond.Address())

	for s := 0; s <= 255; s++ {
		if uint8(s) == CanonicalSalt() {
			continue
		}
		_, err := VerifyAuthority(uint32(s))
		require.True(t, errors.ErrUnauthorized.Is(err), "salt %d: %+v", s, err)
	}

	for _, s := range []uint32{256, 509, 1000, uint32(CanonicalSalt()) + 256} {
		_, err := VerifyAuthority(s)
		require.True(t, errors.ErrUnauthorized.Is(err), "salt %d: %+v", s, err)
	}
}

func TestHoldingCondition(t *testing.T) {
	alice := bartertest.NewCondition().Address()
	bob := bartertest.NewCondition().Address()

	assert.Equal(t, HoldingCondition(alice, "GOLD"), HoldingCondition(alice, "GOLD"))
	assert.NotEqual(t, HoldingCondition(alice, "GOLD").Address(), HoldingCondition(alice, "SILVER").Address())
	assert.NotEqual(t, HoldingCondition(alice, "GOLD").Address(), HoldingCondition(bob, "GOLD").Address())
	assert.NoError(t, HoldingCondition(alice, "GOLD").Validate())
}

func TestAuthenticate(t *testing.T) {
	var auth Authenticate
	ctx := context.Background()
	assert.Empty(t, auth.GetConditions(ctx))
	assert.False(t, auth.HasAddress(ctx, ProtocolAuthority().Address()))

	ctx = withAuthority(ctx, ProtocolAuthority())
	assert.Equal(t, []barter.Condition{ProtocolAuthority()}, auth.GetConditions(ctx))
	assert.True(t, auth.HasAddress(ctx, ProtocolAuthority().Address()))
	assert.False(t, auth.HasAddress(ctx, bartertest.NewCondition().Address()))
}
