package ledger

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"conf": {
			"ledger": {"metadata": {"schema": 1}, "account_deposit": "0.1 IOV"}
		},
		"ledger": {
			"kinds": [
				{"ticker": "GOLD", "name": "Gold bars", "issuer": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"}
			],
			"accounts": [
				{"owner": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "kind": "GOLD", "amount": 1000},
				{"owner": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "kind": "GOLD", "seed": "vault", "amount": 5}
			]
		}
	}`
	var opts barter.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	owner, err := barter.ParseAddress("E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	require.NoError(t, err)

	accounts := NewAccountBucket()
	acc, err := accounts.GetAccount(db, AccountCondition(owner, "GOLD", nil).Address())
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), acc.Amount)
	assert.Nil(t, acc.Deposit)

	acc, err = accounts.GetAccount(db, AccountCondition(owner, "GOLD", []byte("vault")).Address())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), acc.Amount)

	conf, err := loadConf(db)
	require.NoError(t, err)
	assert.Equal(t, int64(100000000), conf.AccountDeposit.Fractional)
}

func TestGenesisErrors(t *testing.T) {
	const conf = `"conf": {"ledger": {"metadata": {"schema": 1}}}`
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"missing configuration": {
			genesis: `{}`,
			wantErr: errors.ErrNotFound,
		},
		"unknown kind": {
			genesis: `{` + conf + `, "ledger": {"accounts": [{"owner": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "kind": "GOLD"}]}}`,
			wantErr: errors.ErrNotFound,
		},
		"duplicated kind": {
			genesis: `{` + conf + `, "ledger": {"kinds": [
				{"ticker": "GOLD", "name": "Gold", "issuer": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"},
				{"ticker": "GOLD", "name": "Gold", "issuer": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"}
			]}}`,
			wantErr: errors.ErrDuplicate,
		},
		"duplicated account": {
			genesis: `{` + conf + `, "ledger": {
				"kinds": [{"ticker": "GOLD", "name": "Gold", "issuer": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"}],
				"accounts": [
					{"owner": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "kind": "GOLD"},
					{"owner": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "kind": "GOLD"}
				]}}`,
			wantErr: errors.ErrDuplicate,
		},
		"kind without issuer": {
			genesis: `{` + conf + `, "ledger": {"kinds": [{"ticker": "GOLD", "name": "Gold"}]}}`,
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
