package cash

import (
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/gconf"
)

const configPkg = "cash"

// Validate checks the collector address and the minimal fee.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "CollectorAddress", c.CollectorAddress.Validate())
	if !coin.IsEmpty(c.MinimalFee) {
		errs = errors.AppendField(errs, "MinimalFee", c.MinimalFee.Validate())
		if !c.MinimalFee.IsNonNegative() {
			errs = errors.Append(errs, errors.Field("MinimalFee", errors.ErrAmount, "cannot be negative"))
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
