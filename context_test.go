package barter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	val, ok := GetHeight(ctx)
	assert.Equal(t, int64(0), val)
	assert.False(t, ok)
	ctx = WithHeight(ctx, 7)
	val, ok = GetHeight(ctx)
	assert.Equal(t, int64(7), val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { WithHeight(ctx, 9) })

	// changing the info, should modify the logger, but not the height
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	val, _ = GetHeight(ctx)
	assert.Equal(t, int64(7), val)

	// chain id MUST be set exactly once
	assert.Panics(t, func() { GetChainID(ctx) })
	ctx2 = WithChainID(ctx, "my-chain")
	assert.Equal(t, "my-chain", GetChainID(ctx2))
	assert.Panics(t, func() { WithChainID(ctx2, "my-chain") })
}

func TestHeaderAndBlockTime(t *testing.T) {
	ctx := context.Background()
	_, ok := GetHeader(ctx)
	assert.False(t, ok)
	_, err := BlockTime(ctx)
	assert.Error(t, err)

	header := abci.Header{ChainID: "barter-chain", Height: 3}
	ctx = WithHeader(ctx, header)
	got, ok := GetHeader(ctx)
	assert.True(t, ok)
	assert.Equal(t, header.Height, got.Height)
	assert.Panics(t, func() { WithHeader(ctx, header) })

	now := time.Now().UTC()
	ctx = WithBlockTime(ctx, now)
	bt, err := BlockTime(ctx)
	assert.NoError(t, err)
	assert.True(t, now.Equal(bt))
}

func TestChainID(t *testing.T) {
	cases := []struct {
		chainID string
		valid   bool
	}{
		{"", false},
		{"foo", false},
		{"special", true},
		{"wish-YOU-88", true},
		{"invalid;;chars", false},
		{"this-chain-id-is-way-too-long", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidChainID(tc.chainID), tc.chainID)
	}
}
