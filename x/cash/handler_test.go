package cash

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMsgValidate(t *testing.T) {
	addr := bartertest.NewCondition().Address()
	addr2 := bartertest.NewCondition().Address()

	cases := map[string]struct {
		msg     *SendMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &SendMsg{
				Metadata:    &barter.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(1, 0, "IOV"),
				Memo:        "rent",
			},
		},
		"missing metadata": {
			msg: &SendMsg{
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(1, 0, "IOV"),
			},
			wantErr: errors.ErrMetadata,
		},
		"zero amount": {
			msg: &SendMsg{
				Metadata:    &barter.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(0, 0, "IOV"),
			},
			wantErr: errors.ErrAmount,
		},
		"missing destination": {
			msg: &SendMsg{
				Metadata: &barter.Metadata{Schema: 1},
				Source:   addr,
				Amount:   coin.NewCoinp(1, 0, "IOV"),
			},
			wantErr: errors.ErrEmpty,
		},
		"memo too long": {
			msg: &SendMsg{
				Metadata:    &barter.Metadata{Schema: 1},
				Source:      addr,
				Destination: addr2,
				Amount:      coin.NewCoinp(1, 0, "IOV"),
				Memo:        string(make([]byte, maxMemoSize+1)),
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			}
		})
	}
}

func TestSendHandler(t *testing.T) {
	from := bartertest.NewCondition()
	to := bartertest.NewCondition()

	msg := &SendMsg{
		Metadata:    &barter.Metadata{Schema: 1},
		Source:      from.Address(),
		Destination: to.Address(),
		Amount:      coin.NewCoinp(5, 0, "IOV"),
	}

	cases := map[string]struct {
		signer         barter.Condition
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"source signed": {
			signer: from,
		},
		"wrong signer": {
			signer:         to,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bucket := NewBucket()
			require.NoError(t, bucket.Save(db, must(WalletWith(from.Address(), coin.NewCoinp(7, 0, "IOV")))))

			ctrl := NewController(bucket)
			h := NewSendHandler(&bartertest.Auth{Signer: tc.signer}, ctrl)
			tx := &bartertest.Tx{Msg: msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db, tx)
			if tc.wantCheckErr != nil {
				require.True(t, tc.wantCheckErr.Is(err), "unexpected check error: %+v", err)
			} else {
				require.NoError(t, err)
			}

			res, err := h.Deliver(ctx, db, tx)
			if tc.wantDeliverErr != nil {
				require.True(t, tc.wantDeliverErr.Is(err), "unexpected deliver error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, res.Tags, 2)

			got, err := ctrl.Balance(db, to.Address())
			require.NoError(t, err)
			assert.Equal(t, coin.Coins{coin.NewCoinp(5, 0, "IOV")}, got)
		})
	}
}
