package gconf

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// ReadStore is a subset of barter.ReadOnlyKVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of barter.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is a protobuf message that can validate itself.
type Configuration interface {
	proto.Message
	Validate() error
}

func configKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src Configuration) error {
	key := configKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := proto.Marshal(src)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "marshal: key %q: %s", key, err)
	}
	return db.Set(key, raw)
}

// Load reads the configuration of the given package into dst. ErrNotFound
// is returned if the package was never configured.
func Load(db ReadStore, pkg string, dst Configuration) error {
	key := configKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrState, "unmarshal: key %q: %s", key, err)
	}
	return nil
}

// InitConfig will take opts["conf"][pkg], parse it into the given Configuration object
// validate it, and store under the proper key in the database
// Returns an error if anything goes wrong
func InitConfig(db Store, opts barter.Options, pkg string, conf Configuration) error {
	var confOptions barter.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
