package sigs

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	signatureVerifyCost = 500
)

// RegisterQuery will register this bucket as "/auth"
func RegisterQuery(qr barter.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures and adds them to the context
type Decorator struct {
	allowMissingSigs bool
}

var _ barter.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires at least one signature to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx barter.Context, store barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	ctx, signers, err := d.withVerified(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	// Signature validation is the most expensive part, charge for every
	// valid signature.
	res.GasPayment += int64(signers * signatureVerifyCost)
	return res, nil
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx barter.Context, store barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	ctx, _, err := d.withVerified(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d Decorator) withVerified(ctx barter.Context, store barter.KVStore, tx barter.Tx) (barter.Context, int, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, 0, nil
	}

	signers, err := VerifyTxSignatures(store, stx, barter.GetChainID(ctx))
	if err != nil {
		return nil, 0, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), len(signers), nil
}
