package ledger

import (
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/gconf"
)

const configPkg = "ledger"

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if !coin.IsEmpty(c.AccountDeposit) {
		errs = errors.AppendField(errs, "AccountDeposit", c.AccountDeposit.Validate())
		if !c.AccountDeposit.IsPositive() {
			errs = errors.Append(errs, errors.Field("AccountDeposit", errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, configPkg, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
