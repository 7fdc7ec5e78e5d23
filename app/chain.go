package app

import (
	"reflect"

	"github.com/iov-one/barter"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []barter.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

	app.ChainDecorators(
	  utils.NewLogging(),
	  utils.NewRecovery(),
	  sigs.NewDecorator(),
	  cash.NewFeeDecorator(auth, ctrl),
	  utils.NewSavepoint().OnDeliver(),
	).WithHandler(
	  myapp.Router(),
	)
*/
func ChainDecorators(chain ...barter.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...barter.Decorator) Decorators {
	newChain := make([]barter.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	for _, c := range chain {
		if !isNil(c) {
			newChain = append(newChain, c)
		}
	}
	return Decorators{chain: newChain}
}

func isNil(d barter.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h barter.Handler) barter.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
type step struct {
	d    barter.Decorator
	next barter.Handler
}

var _ barter.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
