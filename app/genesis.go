package app

import (
	"github.com/iov-one/barter"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...barter.Initializer) barter.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []barter.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts barter.Options, kv barter.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
