package utils

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

// Recovery turns a panic further down the stack into ErrPanic, so a
// faulty handler rejects its transaction instead of halting the node.
// The panic is logged with the route of the message.
type Recovery struct{}

var _ barter.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (_ *barter.CheckResult, err error) {
	defer recovered(ctx, tx, &err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (_ *barter.DeliverResult, err error) {
	defer recovered(ctx, tx, &err)
	return next.Deliver(ctx, db, tx)
}

// recovered must be deferred directly, recover only works there.
func recovered(ctx barter.Context, tx barter.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	barter.GetLogger(ctx).Error("handler panic", "path", barter.GetPath(tx), "panic", r)
}
