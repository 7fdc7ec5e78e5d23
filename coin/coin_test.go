package coin

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    Coin
		want    Coin
		wantErr *errors.Error
	}{
		"simple sum": {
			a:    NewCoin(1, 500000000, "IOV"),
			b:    NewCoin(2, 600000000, "IOV"),
			want: NewCoin(4, 100000000, "IOV"),
		},
		"sum to negative": {
			a:    NewCoin(1, 0, "IOV"),
			b:    NewCoin(-2, -500000000, "IOV"),
			want: NewCoin(-1, -500000000, "IOV"),
		},
		"zero without ticker is neutral": {
			a:    Coin{},
			b:    NewCoin(3, 0, "IOV"),
			want: NewCoin(3, 0, "IOV"),
		},
		"different currencies": {
			a:       NewCoin(1, 0, "IOV"),
			b:       NewCoin(1, 0, "ETH"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "IOV"),
			b:       NewCoin(1, 0, "IOV"),
			wantErr: errors.ErrOverflow,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinCompare(t *testing.T) {
	a := NewCoin(5, 1, "IOV")
	b := NewCoin(5, 0, "IOV")
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.IsGTE(b))
	assert.False(t, b.IsGTE(a))
	assert.False(t, a.IsGTE(NewCoin(1, 0, "ETH")))

	diff, err := b.Subtract(a)
	require.NoError(t, err)
	assert.False(t, diff.IsNonNegative())
	assert.False(t, diff.IsPositive())
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid":           {coin: NewCoin(1, 5, "IOV")},
		"bad ticker":      {coin: NewCoin(1, 0, "iov"), wantErr: errors.ErrCurrency},
		"too big":         {coin: NewCoin(MaxInt+1, 0, "IOV"), wantErr: errors.ErrOverflow},
		"fraction range":  {coin: NewCoin(0, FracUnit, "IOV"), wantErr: errors.ErrOverflow},
		"mismatched sign": {coin: NewCoin(1, -5, "IOV"), wantErr: errors.ErrState},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.wantErr.Is(err), "got %+v", err)
		})
	}
}

func TestCoinHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr bool
	}{
		"whole":            {raw: "12 IOV", want: NewCoin(12, 0, "IOV")},
		"fractional":       {raw: "0.5 IOV", want: NewCoin(0, 500000000, "IOV")},
		"full precision":   {raw: "1.000000001 ETH", want: NewCoin(1, 1, "ETH")},
		"negative":         {raw: "-3.25 IOV", want: NewCoin(-3, -250000000, "IOV")},
		"no space":         {raw: "7IOV", want: NewCoin(7, 0, "IOV")},
		"missing ticker":   {raw: "7", wantErr: true},
		"too many decimal": {raw: "1.0000000001 IOV", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			// String must be parsable back
			back, err := ParseHumanFormat(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, back)
		})
	}
}

func TestCoinUnmarshalJSON(t *testing.T) {
	var c Coin
	require.NoError(t, json.Unmarshal([]byte(`"1.5 IOV"`), &c))
	assert.Equal(t, NewCoin(1, 500000000, "IOV"), c)

	require.NoError(t, json.Unmarshal([]byte(`{"whole": 2, "ticker": "ETH"}`), &c))
	assert.Equal(t, NewCoin(2, 0, "ETH"), c)

	assert.Error(t, json.Unmarshal([]byte(`"wrong"`), &c))
}
