package escrow

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowValidate(t *testing.T) {
	depositor := bartertest.NewCondition().Address()
	counterparty := bartertest.NewCondition().Address()
	valid := func() *Escrow {
		return &Escrow{
			Metadata:        &barter.Metadata{Schema: 1},
			Depositor:       depositor,
			AssetAKind:      "GOLD",
			AssetBKind:      "SILVER",
			DepositorAssetA: bartertest.NewCondition().Address(),
			DepositorAssetB: bartertest.NewCondition().Address(),
			AssetAAmount:    100,
			AssetBAmount:    50,
			HoldingAccount:  HoldingCondition(depositor, "GOLD").Address(),
			State:           StateOpen,
		}
	}

	cases := map[string]struct {
		mutate  func(*Escrow)
		wantErr *errors.Error
	}{
		"valid open": {
			mutate: func(e *Escrow) {},
		},
		"valid exchanged": {
			mutate: func(e *Escrow) {
				e.State = StateExchanged
				e.Counterparty = counterparty
			},
		},
		"exchanged without counterparty": {
			mutate:  func(e *Escrow) { e.State = StateExchanged },
			wantErr: errors.ErrEmpty,
		},
		"cancelled with counterparty": {
			mutate: func(e *Escrow) {
				e.State = StateCancelled
				e.Counterparty = counterparty
			},
			wantErr: errors.ErrState,
		},
		"invalid state": {
			mutate:  func(e *Escrow) { e.State = StateInvalid },
			wantErr: errors.ErrState,
		},
		"same kinds": {
			mutate:  func(e *Escrow) { e.AssetBKind = "GOLD" },
			wantErr: errors.ErrInput,
		},
		"zero amount": {
			mutate:  func(e *Escrow) { e.AssetBAmount = 0 },
			wantErr: errors.ErrAmount,
		},
		"missing holding account": {
			mutate:  func(e *Escrow) { e.HoldingAccount = nil },
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			e := valid()
			tc.mutate(e)
			err := e.Validate()
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}

func TestBucketCreate(t *testing.T) {
	db := store.MemStore()
	b := NewBucket()
	depositor := bartertest.NewCondition().Address()
	e := &Escrow{
		Metadata:        &barter.Metadata{Schema: 1},
		Depositor:       depositor,
		AssetAKind:      "GOLD",
		AssetBKind:      "SILVER",
		DepositorAssetA: bartertest.NewCondition().Address(),
		DepositorAssetB: bartertest.NewCondition().Address(),
		AssetAAmount:    1,
		AssetBAmount:    1,
		HoldingAccount:  HoldingCondition(depositor, "GOLD").Address(),
		State:           StateOpen,
	}

	id1, err := b.Create(db, e)
	require.NoError(t, err)
	id2, err := b.Create(db, e)
	require.NoError(t, err)
	assert.Equal(t, bartertest.SequenceID(1), id1)
	assert.Equal(t, bartertest.SequenceID(2), id2)

	got, err := b.GetEscrow(db, id2)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = b.GetEscrow(db, bartertest.SequenceID(3))
	assert.True(t, errors.ErrNotFound.Is(err), "unexpected error: %+v", err)

	e.State = StateInvalid
	_, err = b.Create(db, e)
	assert.True(t, errors.ErrState.Is(err), "unexpected error: %+v", err)
}

func TestEscrowEncoding(t *testing.T) {
	depositor := bartertest.NewCondition().Address()
	e := &Escrow{
		Metadata:       &barter.Metadata{Schema: 1},
		Depositor:      depositor,
		AssetAKind:     "GOLD",
		AssetBKind:     "SILVER",
		AssetAAmount:   300,
		HoldingAccount: HoldingCondition(depositor, "GOLD").Address(),
		State:          StateExchanged,
	}
	raw, err := e.Marshal()
	require.NoError(t, err)
	assert.Equal(t, e.Size(), len(raw))

	// state is field 10, a varint
	assert.Contains(t, string(raw), string([]byte{0x50, byte(StateExchanged)}))

	// a newer schema may add fields, older code must ignore them
	unknown := append(raw, 0xa0, 0x06, 0x01, 0xaa, 0x06, 0x02, 'h', 'i')
	var got Escrow
	require.NoError(t, got.Unmarshal(unknown))
	assert.Equal(t, e, &got)

	var truncated Escrow
	assert.Error(t, truncated.Unmarshal(raw[:len(raw)-1]))

	assert.NotNil(t, proto.MessageType("escrow.Escrow"))
	assert.Equal(t, "exchanged", got.State.String())
	assert.Equal(t, int32(StateExchanged), State_value["STATE_EXCHANGED"])
}
