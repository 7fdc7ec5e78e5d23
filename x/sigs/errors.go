package sigs

import (
	"github.com/iov-one/barter/errors"
)

// x/sigs reserves 120 ~ 129.

// ErrInvalidSequence is returned when a signature nonce does not match the
// one stored for the signer.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
