package ledger

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/gconf"
)

const optKey = "ledger"

// GenesisAccount describes an account preloaded with a balance. The
// account id is derived with AccountCondition and no deposit is charged.
type GenesisAccount struct {
	Owner  barter.Address `json:"owner"`
	Kind   string         `json:"kind"`
	Seed   string         `json:"seed"`
	Amount uint64         `json:"amount"`
}

type genesis struct {
	Kinds []struct {
		Ticker string         `json:"ticker"`
		Name   string         `json:"name"`
		Issuer barter.Address `json:"issuer"`
	} `json:"kinds"`
	Accounts []GenesisAccount `json:"accounts"`
}

// Initializer loads asset kinds and accounts from the genesis file.
type Initializer struct{}

var _ barter.Initializer = Initializer{}

func (Initializer) FromGenesis(opts barter.Options, db barter.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, configPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var gen genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return errors.Wrap(err, "cannot parse ledger")
	}

	kinds := NewKindBucket()
	for _, k := range gen.Kinds {
		kind := &AssetKind{
			Metadata: &barter.Metadata{Schema: 1},
			Ticker:   k.Ticker,
			Name:     k.Name,
			Issuer:   k.Issuer,
		}
		if err := kind.Validate(); err != nil {
			return errors.Wrapf(err, "asset kind %q", k.Ticker)
		}
		if err := kinds.Create(db, kind); err != nil {
			return err
		}
	}

	accounts := NewAccountBucket()
	for i, a := range gen.Accounts {
		if _, err := kinds.GetKind(db, a.Kind); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		id := AccountCondition(a.Owner, a.Kind, []byte(a.Seed)).Address()
		if has, err := accounts.Has(db, id); err != nil {
			return err
		} else if has {
			return errors.Wrapf(errors.ErrDuplicate, "account %d", i)
		}
		acc := &Account{
			Metadata: &barter.Metadata{Schema: 1},
			Owner:    a.Owner,
			Kind:     a.Kind,
			Amount:   a.Amount,
		}
		if err := accounts.SaveAccount(db, id, acc); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
