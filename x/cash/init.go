package cash

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/gconf"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use barter.Address, so address in hex, not base64
type GenesisAccount struct {
	Address barter.Address `json:"address"`
	Coins   coin.Coins     `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ barter.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database. The configuration is read from
// the "conf" section.
func (Initializer) FromGenesis(opts barter.Options, kv barter.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return errors.Wrap(err, "cannot parse wallets")
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "wallet %d address", i)
		}
		wallet, err := WalletWith(acct.Address, acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "wallet %s", acct.Address)
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return errors.Wrapf(err, "cannot save wallet %s", acct.Address)
		}
	}

	var conf Configuration
	if err := gconf.InitConfig(kv, opts, configPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
