package escrow

import (
	"testing"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/stretchr/testify/require"
)

func TestOpenMsgValidate(t *testing.T) {
	meta := &barter.Metadata{Schema: 1}
	accA := bartertest.NewCondition().Address()
	accB := bartertest.NewCondition().Address()

	cases := map[string]struct {
		msg     barter.Msg
		wantErr *errors.Error
	}{
		"valid without depositor": {
			msg: &OpenMsg{Metadata: meta, AssetAKind: "GOLD", AssetBKind: "SILVER",
				DepositorAssetA: accA, DepositorAssetB: accB, AssetAAmount: 100, AssetBAmount: 50},
		},
		"missing metadata": {
			msg: &OpenMsg{AssetAKind: "GOLD", AssetBKind: "SILVER",
				DepositorAssetA: accA, DepositorAssetB: accB, AssetAAmount: 100, AssetBAmount: 50},
			wantErr: errors.ErrMetadata,
		},
		"same kinds": {
			msg: &OpenMsg{Metadata: meta, AssetAKind: "GOLD", AssetBKind: "GOLD",
				DepositorAssetA: accA, DepositorAssetB: accB, AssetAAmount: 100, AssetBAmount: 50},
			wantErr: errors.ErrInput,
		},
		"invalid ticker": {
			msg: &OpenMsg{Metadata: meta, AssetAKind: "gold", AssetBKind: "SILVER",
				DepositorAssetA: accA, DepositorAssetB: accB, AssetAAmount: 100, AssetBAmount: 50},
			wantErr: errors.ErrInput,
		},
		"zero amount A": {
			msg: &OpenMsg{Metadata: meta, AssetAKind: "GOLD", AssetBKind: "SILVER",
				DepositorAssetA: accA, DepositorAssetB: accB, AssetBAmount: 50},
			wantErr: errors.ErrAmount,
		},
		"zero amount B": {
			msg: &OpenMsg{Metadata: meta, AssetAKind: "GOLD", AssetBKind: "SILVER",
				DepositorAssetA: accA, DepositorAssetB: accB, AssetAAmount: 100},
			wantErr: errors.ErrAmount,
		},
		"missing account": {
			msg: &OpenMsg{Metadata: meta, AssetAKind: "GOLD", AssetBKind: "SILVER",
				DepositorAssetA: accA, AssetAAmount: 100, AssetBAmount: 50},
			wantErr: errors.ErrEmpty,
		},
		"cancel valid": {
			msg: &CancelMsg{Metadata: meta, EscrowID: bartertest.SequenceID(1),
				DepositorAssetA: accA, HoldingAccount: accB, Salt: 254},
		},
		"cancel short id": {
			msg: &CancelMsg{Metadata: meta, EscrowID: []byte{1},
				DepositorAssetA: accA, HoldingAccount: accB},
			wantErr: errors.ErrInput,
		},
		"cancel salt beyond a byte is left to the handler": {
			msg: &CancelMsg{Metadata: meta, EscrowID: bartertest.SequenceID(1),
				DepositorAssetA: accA, HoldingAccount: accB, Salt: 1000},
		},
		"exchange valid": {
			msg: &ExchangeMsg{Metadata: meta, EscrowID: bartertest.SequenceID(1),
				DepositorAssetA: accA, DepositorAssetB: accB,
				CounterpartyAssetA: accA, CounterpartyAssetB: accB, HoldingAccount: accB},
		},
		"exchange missing id": {
			msg: &ExchangeMsg{Metadata: meta,
				DepositorAssetA: accA, DepositorAssetB: accB,
				CounterpartyAssetA: accA, CounterpartyAssetB: accB, HoldingAccount: accB},
			wantErr: errors.ErrEmpty,
		},
		"exchange invalid counterparty": {
			msg: &ExchangeMsg{Metadata: meta, EscrowID: bartertest.SequenceID(1), Counterparty: []byte{1, 2},
				DepositorAssetA: accA, DepositorAssetB: accB,
				CounterpartyAssetA: accA, CounterpartyAssetB: accB, HoldingAccount: accB},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
		})
	}
}
