package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/gconf"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"cash": [
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "coins": ["10.5 IOV", {"whole": 3, "ticker": "ETH"}]},
			{"address": "cond:escrow/holding/0102", "coins": []}
		],
		"conf": {
			"cash": {
				"metadata": {"schema": 1},
				"collector_address": "A1B2C3D4E5F6A1B2C3D4E5F6A1B2C3D4E5F6A1B2",
				"minimal_fee": "0.01 IOV"
			}
		}
	}`
	var opts barter.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	addr, err := barter.ParseAddress("E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	require.NoError(t, err)
	got, err := NewController(NewBucket()).Balance(db, addr)
	require.NoError(t, err)
	want := coin.Coins{coin.NewCoinp(3, 0, "ETH"), coin.NewCoinp(10, 500000000, "IOV")}
	assert.Equal(t, want, got)

	var conf Configuration
	require.NoError(t, gconf.Load(db, configPkg, &conf))
	assert.Equal(t, coin.NewCoinp(0, 10000000, "IOV"), conf.MinimalFee)
}

func TestGenesisErrors(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"missing configuration": {
			genesis: `{"cash": []}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid address": {
			genesis: `{"cash": [{"address": "", "coins": ["1 IOV"]}], "conf": {"cash": {}}}`,
			wantErr: errors.ErrEmpty,
		},
		"invalid configuration": {
			genesis: `{"conf": {"cash": {"metadata": {"schema": 1}}}}`,
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts barter.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, store.MemStore())
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}
