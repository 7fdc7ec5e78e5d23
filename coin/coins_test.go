package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinsAddSubtract(t *testing.T) {
	cs, err := CombineCoins(NewCoin(1, 0, "IOV"), NewCoin(2, 0, "ETH"), NewCoin(3, 0, "IOV"))
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "ETH", cs[0].Ticker)
	assert.Equal(t, NewCoin(4, 0, "IOV"), *cs[1])

	assert.True(t, cs.Contains(NewCoin(4, 0, "IOV")))
	assert.False(t, cs.Contains(NewCoin(4, 1, "IOV")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "BTC")))

	// Add does not modify the receiver
	more, err := cs.Add(NewCoin(1, 0, "BTC"))
	require.NoError(t, err)
	assert.Len(t, cs, 2)
	assert.Len(t, more, 3)
	assert.Equal(t, "BTC", more[0].Ticker)

	less, err := more.Subtract(NewCoin(2, 0, "ETH"))
	require.NoError(t, err)
	assert.Len(t, less, 2, "zero currency removed")
	assert.NoError(t, less.Validate())

	neg, err := less.Subtract(NewCoin(5, 0, "IOV"))
	require.NoError(t, err)
	assert.False(t, neg.IsNonNegative())
}

func TestCoinsCombineAndNormalize(t *testing.T) {
	a := Coins{NewCoinp(1, 0, "ETH")}
	b := Coins{NewCoinp(1, 0, "ETH"), NewCoinp(2, 0, "IOV")}
	sum, err := a.Combine(b)
	require.NoError(t, err)
	want := Coins{NewCoinp(2, 0, "ETH"), NewCoinp(2, 0, "IOV")}
	assert.True(t, want.Equals(sum))

	messy := Coins{NewCoinp(2, 0, "IOV"), NewCoinp(0, 0, "BTC"), NewCoinp(1, 0, "ETH"), NewCoinp(1, 0, "ETH")}
	assert.Error(t, messy.Validate())
	norm, err := NormalizeCoins(messy)
	require.NoError(t, err)
	assert.True(t, want.Equals(norm))
	assert.NoError(t, norm.Validate())
}
