package app

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
)

// orderDecorator appends its name to the result log on the way out.
type orderDecorator string

func (o orderDecorator) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Log += string(o)
	return res, nil
}

func (o orderDecorator) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Log += string(o)
	return res, nil
}

func TestChain(t *testing.T) {
	var nilDecorator *bartertest.Decorator
	d1 := &bartertest.Decorator{}
	d2 := &bartertest.Decorator{}
	h := &bartertest.Handler{}

	stack := ChainDecorators(d1, nilDecorator, orderDecorator("a")).
		Chain(nil, orderDecorator("b"), d2).
		WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/open"}}

	res, err := stack.Check(ctx, db, tx)
	assert.NoError(t, err)
	// the first decorator is executed first, so it sees the result last
	assert.Equal(t, "ba", res.Log)
	assert.Equal(t, []string{"escrow/open"}, d1.Checked())
	assert.Equal(t, []string{"escrow/open"}, d2.Checked())

	d2.DeliverErr = errors.ErrHuman
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, 1, d1.DeliverCallCount())
	assert.Equal(t, []string{"escrow/open"}, d2.Delivered())
	assert.Equal(t, 0, h.DeliverCallCount())
}
