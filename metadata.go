package barter

import (
	"github.com/iov-one/barter/errors"
)

// Validate returns an error if the metadata is missing or declares no
// schema version.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version must be positive")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when
// implementing orm.CloneableData interface to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
