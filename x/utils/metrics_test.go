package utils

import (
	"context"
	"testing"

	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.True(t, errors.ErrInput.Is(err), "unexpected error: %+v", err)

	ctx := context.Background()
	db := store.MemStore()
	tx := &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/open"}}

	_, err = m.Check(ctx, db, tx, &bartertest.Handler{})
	require.NoError(t, err)
	_, err = m.Deliver(ctx, db, tx, &bartertest.Handler{})
	require.NoError(t, err)
	_, err = m.Deliver(ctx, db, tx, &bartertest.Handler{DeliverErr: errors.ErrState})
	require.True(t, errors.ErrState.Is(err))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.total.WithLabelValues("check", "escrow/open", "0")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.total.WithLabelValues("deliver", "escrow/open", "0")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.total.WithLabelValues("deliver", "escrow/open", "10")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}
