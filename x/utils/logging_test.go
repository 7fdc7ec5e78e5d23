package utils

import (
	"bytes"
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := barter.WithLogger(context.Background(), log.NewTMLogger(&buf))
	db := store.MemStore()
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/cancel"}}
	l := NewLogging()

	_, err := l.Deliver(ctx, db, tx, &bartertest.Handler{DeliverResult: barter.DeliverResult{Log: "cancelled"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "cancelled")
	assert.Contains(t, buf.String(), "path=escrow/cancel")

	buf.Reset()
	_, err = l.Check(ctx, db, tx, &bartertest.Handler{CheckErr: errors.ErrState})
	require.True(t, errors.ErrState.Is(err))
	assert.Contains(t, buf.String(), "E[")
	assert.Contains(t, buf.String(), "err=")
}
