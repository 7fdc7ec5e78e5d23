package sigs

import (
	"context"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/x"
)

type contextKey int // local to the sigs module

const (
	contextKeySigners contextKey = iota
)

// withSigners is a private method, as only this module
// can add a signer
func withSigners(ctx barter.Context, signers []barter.Condition) barter.Context {
	return context.WithValue(ctx, contextKeySigners, signers)
}

// Authenticate gives access to the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns who signed the current Context.
// May be empty
func (a Authenticate) GetConditions(ctx barter.Context) []barter.Condition {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigners).([]barter.Condition)
	return val
}

// HasAddress returns true if the address signed the current Context.
func (a Authenticate) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
