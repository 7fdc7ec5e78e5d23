package ledger

import (
	"context"
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type router map[string]barter.Handler

func (r router) Handle(m barter.Msg, h barter.Handler) {
	r[m.Path()] = h
}

func (r router) deliver(ctx barter.Context, db barter.KVStore, msg barter.Msg) (*barter.DeliverResult, error) {
	tx := &bartertest.Tx{Msg: msg}
	h := r[msg.Path()]
	if _, err := h.Check(ctx, db.(barter.CacheableKVStore).CacheWrap(), tx); err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func TestHandlers(t *testing.T) {
	issuer := bartertest.NewCondition()
	alice := bartertest.NewCondition()
	bob := bartertest.NewCondition()

	db, cashCtrl := newTestLedger(t, issuer.Address(), issuer.Address(), alice.Address())
	auth := &bartertest.CtxAuth{Key: "auth"}
	r := router{}
	RegisterRoutes(r, auth, NewController(auth, cashCtrl))

	issuerCtx := auth.SetConditions(context.Background(), issuer)
	aliceCtx := auth.SetConditions(context.Background(), alice)
	meta := &barter.Metadata{Schema: 1}

	res, err := r.deliver(issuerCtx, db, &CreateKindMsg{Metadata: meta, Ticker: "WHEAT", Name: "Wheat bushels"})
	require.NoError(t, err)
	assert.Equal(t, []byte("WHEAT"), res.Data)
	kind, err := NewKindBucket().GetKind(db, "WHEAT")
	require.NoError(t, err)
	assert.Equal(t, issuer.Address(), kind.Issuer)

	_, err = r.deliver(aliceCtx, db, &CreateKindMsg{Metadata: meta, Ticker: "CORN", Name: "Corn", Issuer: issuer.Address()})
	assert.True(t, errors.ErrUnauthorized.Is(err), "unexpected error: %+v", err)
	_, err = r.deliver(issuerCtx, db, &CreateKindMsg{Metadata: meta, Ticker: "WHEAT", Name: "More wheat"})
	assert.True(t, errors.ErrDuplicate.Is(err), "unexpected error: %+v", err)

	res, err = r.deliver(aliceCtx, db, &CreateAccountMsg{Metadata: meta, Kind: "WHEAT"})
	require.NoError(t, err)
	aliceWheat := barter.Address(res.Data)
	assert.Equal(t, AccountCondition(alice.Address(), "WHEAT", nil).Address(), aliceWheat)

	// alice pays the deposit of an account owned by bob
	res, err = r.deliver(aliceCtx, db, &CreateAccountMsg{Metadata: meta, Kind: "WHEAT", Owner: bob.Address(), Seed: []byte("gift")})
	require.NoError(t, err)
	bobWheat := barter.Address(res.Data)

	_, err = r.deliver(issuerCtx, db, &MintMsg{Metadata: meta, Account: aliceWheat, Amount: 40})
	require.NoError(t, err)

	res, err = r.deliver(aliceCtx, db, &TransferMsg{Metadata: meta, Source: aliceWheat, Destination: bobWheat, Amount: 40})
	require.NoError(t, err)
	assert.Len(t, res.Tags, 2)

	_, err = r.deliver(aliceCtx, db, &CloseAccountMsg{Metadata: meta, Account: aliceWheat})
	require.NoError(t, err)

	bobCtx := auth.SetConditions(context.Background(), bob)
	_, err = r.deliver(bobCtx, db, &CloseAccountMsg{Metadata: meta, Account: bobWheat})
	assert.True(t, errors.ErrState.Is(err), "unexpected error: %+v", err)
}

func TestMsgValidate(t *testing.T) {
	addr := bartertest.NewCondition().Address()
	meta := &barter.Metadata{Schema: 1}

	cases := map[string]struct {
		msg     barter.Msg
		wantErr *errors.Error
	}{
		"valid kind": {
			msg: &CreateKindMsg{Metadata: meta, Ticker: "GOLD", Name: "Gold"},
		},
		"lowercase ticker": {
			msg:     &CreateKindMsg{Metadata: meta, Ticker: "gold", Name: "Gold"},
			wantErr: errors.ErrInput,
		},
		"missing name": {
			msg:     &CreateKindMsg{Metadata: meta, Ticker: "GOLD"},
			wantErr: errors.ErrInput,
		},
		"zero mint": {
			msg:     &MintMsg{Metadata: meta, Account: addr},
			wantErr: errors.ErrAmount,
		},
		"valid account": {
			msg: &CreateAccountMsg{Metadata: meta, Kind: "GOLD", Seed: []byte("x")},
		},
		"seed too long": {
			msg:     &CreateAccountMsg{Metadata: meta, Kind: "GOLD", Seed: make([]byte, maxSeedSize+1)},
			wantErr: errors.ErrInput,
		},
		"transfer missing destination": {
			msg:     &TransferMsg{Metadata: meta, Source: addr, Amount: 1},
			wantErr: errors.ErrEmpty,
		},
		"transfer without metadata": {
			msg:     &TransferMsg{Source: addr, Destination: addr, Amount: 1},
			wantErr: errors.ErrMetadata,
		},
		"close without account": {
			msg:     &CloseAccountMsg{Metadata: meta},
			wantErr: errors.ErrEmpty,
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
