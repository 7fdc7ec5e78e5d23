package bartertest

import "github.com/iov-one/barter"

// Decorator records the route path of every message that passes
// through it, so tests can assert which actions reached each phase.
// A set CheckErr or DeliverErr stops the chain after recording.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checked   []string
	delivered []string
}

var _ barter.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	d.checked = append(d.checked, barter.GetPath(tx))
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	d.delivered = append(d.delivered, barter.GetPath(tx))
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Checked lists the routes seen by Check, oldest first.
func (d *Decorator) Checked() []string {
	return d.checked
}

// Delivered lists the routes seen by Deliver, oldest first.
func (d *Decorator) Delivered() []string {
	return d.delivered
}

func (d *Decorator) CheckCallCount() int {
	return len(d.checked)
}

func (d *Decorator) DeliverCallCount() int {
	return len(d.delivered)
}

// Stack puts the decorators in front of h, the first one outermost.
func Stack(h barter.Handler, ds ...barter.Decorator) barter.Handler {
	for i := len(ds) - 1; i >= 0; i-- {
		h = &decorated{next: h, dec: ds[i]}
	}
	return h
}

type decorated struct {
	next barter.Handler
	dec  barter.Decorator
}

func (d *decorated) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d *decorated) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}
