package utils_test

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/iov-one/barter/x/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/common"
)

func stringTag(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		handler *bartertest.Handler
		tx      barter.Tx
		err     *errors.Error
		tags    []common.KVPair
	}{
		"simple call": {
			handler: &bartertest.Handler{},
			tx:      &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/open"}},
			tags: []common.KVPair{
				stringTag(utils.ActionKey, "escrow/open"),
				stringTag(utils.ModuleKey, "escrow"),
			},
		},
		"route without module": {
			handler: &bartertest.Handler{},
			tx:      &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "noop"}},
			tags:    []common.KVPair{stringTag(utils.ActionKey, "noop")},
		},
		"passes through error": {
			handler: &bartertest.Handler{DeliverErr: errors.ErrHuman},
			tx:      &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/open"}},
			err:     errors.ErrHuman,
		},
		"broken transaction": {
			handler: &bartertest.Handler{},
			tx:      &bartertest.Tx{Err: errors.ErrMsg},
			err:     errors.ErrMsg,
		},
		"tags are additive": {
			handler: &bartertest.Handler{
				DeliverResult: barter.DeliverResult{Tags: []common.KVPair{stringTag("escrow.action", "exchange")}},
			},
			tx: &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: "escrow/exchange"}},
			tags: []common.KVPair{
				stringTag("escrow.action", "exchange"),
				stringTag(utils.ActionKey, "escrow/exchange"),
				stringTag(utils.ModuleKey, "escrow"),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			seen := &bartertest.Decorator{}
			stack := bartertest.Stack(tc.handler, seen, utils.NewActionTagger())
			res, err := stack.Deliver(context.Background(), store.MemStore(), tc.tx)
			assert.Equal(t, 1, seen.DeliverCallCount())
			if tc.err != nil {
				require.True(t, tc.err.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.tags, res.Tags)
			assert.Empty(t, seen.Checked())
		})
	}
}
