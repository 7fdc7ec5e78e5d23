package utils

import (
	"context"
	"testing"

	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := bartertest.PanicHandler{Value: "boom"}
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/open"}}

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { _, _ = h.Check(ctx, s, tx) })
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, s, tx) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, tx, h)
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "boom")

	// A handler that returns normally keeps its error.
	_, err = r.Deliver(ctx, s, tx, &bartertest.Handler{DeliverErr: errors.ErrState})
	assert.True(t, errors.ErrState.Is(err))
}
