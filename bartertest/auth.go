package bartertest

import (
	"context"
	"fmt"

	"github.com/iov-one/barter"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of referenced conditions.
// You can use either Signer or Signers (or both) attributes to reference
// conditions. Signer, when set, is always the first (main) signer.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer barter.Condition

	// Signers represents an authentication of multiple signers.
	Signers []barter.Condition
}

func (a *Auth) GetConditions(barter.Context) []barter.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]barter.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve conditions.
type CtxAuth struct {
	// Key used to set and retrieve conditions from the context. For
	// convenience only string type keys are allowed.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetConditions(ctx barter.Context, conds ...barter.Condition) barter.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx barter.Context) []barter.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	conds, ok := val.([]barter.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []barter.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx barter.Context, addr barter.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}
