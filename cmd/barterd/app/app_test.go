package app

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/crypto"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x/cash"
	"github.com/iov-one/barter/x/escrow"
	"github.com/iov-one/barter/x/ledger"
	"github.com/iov-one/barter/x/sigs"
	"github.com/iov-one/barter/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "barter-test-chain"

type recordingSink struct {
	mu     sync.Mutex
	events []app.TxEvent
}

func (s *recordingSink) Publish(ctx context.Context, events []app.TxEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

type testNode struct {
	t      *testing.T
	app    app.BaseApp
	height int64
}

func newTestNode(t *testing.T, genesis string, sink app.EventSink) *testNode {
	t.Helper()

	metrics, err := utils.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	abciApp, err := GenerateApp("", log.NewNopLogger(), true, metrics, sink)
	require.NoError(t, err)

	n := &testNode{t: t, app: abciApp.(app.BaseApp)}
	n.app.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(genesis)})
	// genesis is written to the deliver store, commit it so that checks
	// and queries can see it
	n.block()
	return n
}

// block runs a complete block with the given transactions.
func (n *testNode) block(txs ...[]byte) []abci.ResponseDeliverTx {
	n.t.Helper()

	n.height++
	n.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{
		ChainID: chainID,
		Height:  n.height,
		Time:    time.Now(),
	}})
	results := make([]abci.ResponseDeliverTx, 0, len(txs))
	for _, bz := range txs {
		results = append(results, n.app.DeliverTx(bz))
	}
	n.app.EndBlock(abci.RequestEndBlock{Height: n.height})
	n.app.Commit()
	return results
}

// sign sets a signature of the key with the next nonce and returns the
// serialized transaction.
func (n *testNode) sign(key *crypto.PrivateKey, tx *Tx) []byte {
	n.t.Helper()

	nonce, err := sigs.NextNonce(n.app.DeliverStore(), key.PublicKey().Address())
	require.NoError(n.t, err)
	sig, err := sigs.SignTx(key, tx, chainID, nonce)
	require.NoError(n.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	bz, err := proto.Marshal(tx)
	require.NoError(n.t, err)
	return bz
}

// deliver signs the transaction with the key, checks it and runs it
// through a complete block.
func (n *testNode) deliver(key *crypto.PrivateKey, tx *Tx) abci.ResponseDeliverTx {
	n.t.Helper()

	bz := n.sign(key, tx)
	chk := n.app.CheckTx(bz)
	require.Equal(n.t, uint32(0), chk.Code, chk.Log)
	return n.block(bz)[0]
}

func (n *testNode) query(path string, key []byte, dst proto.Message) {
	n.t.Helper()
	res := n.app.Query(abci.RequestQuery{Path: path, Data: key})
	require.Equal(n.t, uint32(0), res.Code, res.Log)
	require.NoError(n.t, app.UnmarshalOneResult(res.Value, dst))
}

func (n *testNode) balance(id barter.Address) uint64 {
	var acc ledger.Account
	n.query("/accounts", id, &acc)
	return acc.Amount
}

func TestEscrowLifecycle(t *testing.T) {
	alice := crypto.GenPrivKeyEd25519()
	bob := crypto.GenPrivKeyEd25519()
	aliceAddr := alice.PublicKey().Address()
	bobAddr := bob.PublicKey().Address()
	collector := crypto.GenPrivKeyEd25519().PublicKey().Address()

	genesis := fmt.Sprintf(`{
		"conf": {
			"cash": {"metadata": {"schema": 1}, "collector_address": "%[3]s"},
			"ledger": {"metadata": {"schema": 1}, "account_deposit": "0.5 IOV"}
		},
		"cash": [
			{"address": "%[1]s", "coins": ["10 IOV"]},
			{"address": "%[2]s", "coins": ["10 IOV"]}
		],
		"ledger": {
			"kinds": [
				{"ticker": "GOLD", "name": "Gold", "issuer": "%[1]s"},
				{"ticker": "SILVER", "name": "Silver", "issuer": "%[2]s"}
			],
			"accounts": [
				{"owner": "%[1]s", "kind": "GOLD", "amount": 150},
				{"owner": "%[1]s", "kind": "SILVER"},
				{"owner": "%[2]s", "kind": "GOLD"},
				{"owner": "%[2]s", "kind": "SILVER", "amount": 80}
			]
		}
	}`, aliceAddr, bobAddr, collector)

	sink := &recordingSink{}
	node := newTestNode(t, genesis, sink)

	aliceGold := ledger.AccountCondition(aliceAddr, "GOLD", nil).Address()
	aliceSilver := ledger.AccountCondition(aliceAddr, "SILVER", nil).Address()
	bobGold := ledger.AccountCondition(bobAddr, "GOLD", nil).Address()
	bobSilver := ledger.AccountCondition(bobAddr, "SILVER", nil).Address()
	holding := escrow.HoldingCondition(aliceAddr, "GOLD").Address()

	res := node.deliver(alice, &Tx{
		OpenEscrowMsg: &escrow.OpenMsg{
			Metadata:        &barter.Metadata{Schema: 1},
			AssetAKind:      "GOLD",
			AssetBKind:      "SILVER",
			DepositorAssetA: aliceGold,
			DepositorAssetB: aliceSilver,
			AssetAAmount:    100,
			AssetBAmount:    50,
		},
	})
	require.Equal(t, uint32(0), res.Code, res.Log)
	escrowID := res.Data
	require.Len(t, escrowID, 8)

	assert.Equal(t, uint64(50), node.balance(aliceGold))
	assert.Equal(t, uint64(100), node.balance(holding))

	res = node.deliver(bob, &Tx{
		ExchangeEscrowMsg: &escrow.ExchangeMsg{
			Metadata:           &barter.Metadata{Schema: 1},
			EscrowID:           escrowID,
			DepositorAssetA:    aliceGold,
			DepositorAssetB:    aliceSilver,
			CounterpartyAssetA: bobGold,
			CounterpartyAssetB: bobSilver,
			HoldingAccount:     holding,
			Salt:               uint32(escrow.CanonicalSalt()),
		},
	})
	require.Equal(t, uint32(0), res.Code, res.Log)

	assert.Equal(t, uint64(50), node.balance(aliceGold))
	assert.Equal(t, uint64(50), node.balance(aliceSilver))
	assert.Equal(t, uint64(100), node.balance(bobGold))
	assert.Equal(t, uint64(30), node.balance(bobSilver))

	// the holding account is gone, its deposit went to bob
	qres := node.app.Query(abci.RequestQuery{Path: "/accounts", Data: holding})
	require.Equal(t, uint32(0), qres.Code, qres.Log)
	var empty app.ResultSet
	require.NoError(t, proto.Unmarshal(qres.Value, &empty))
	assert.Empty(t, empty.Results)

	var wallet cash.Wallet
	node.query("/wallets", bobAddr, &wallet)
	require.Len(t, wallet.Coins, 1)
	assert.Equal(t, int64(10), wallet.Coins[0].Whole)
	assert.Equal(t, int64(500000000), wallet.Coins[0].Fractional)

	var stored escrow.Escrow
	node.query("/escrows", escrowID, &stored)
	assert.Equal(t, escrow.StateExchanged, stored.State)
	assert.Equal(t, bobAddr, stored.Counterparty)

	// a consumed escrow cannot be cancelled
	cancel := &Tx{
		CancelEscrowMsg: &escrow.CancelMsg{
			Metadata:        &barter.Metadata{Schema: 1},
			EscrowID:        escrowID,
			DepositorAssetA: aliceGold,
			HoldingAccount:  holding,
			Salt:            uint32(escrow.CanonicalSalt()),
		},
	}
	bz := node.sign(alice, cancel)
	chk := node.app.CheckTx(bz)
	assert.Equal(t, errors.ErrState.ABCICode(), chk.Code, chk.Log)
	res = node.block(bz)[0]
	assert.Equal(t, errors.ErrState.ABCICode(), res.Code, res.Log)
	assert.Equal(t, uint64(50), node.balance(aliceGold))

	// the genesis block comes first
	require.Len(t, sink.events, 2)
	assert.Equal(t, "escrow/open", sink.events[0].Path)
	assert.Equal(t, int64(2), sink.events[0].Height)
	assert.Equal(t, "escrow/exchange", sink.events[1].Path)
	assert.Equal(t, int64(3), sink.events[1].Height)
}

func TestCheckBeforeFirstBlock(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	addr := key.PublicKey().Address()
	genesis := fmt.Sprintf(`{
		"conf": {
			"cash": {"metadata": {"schema": 1}, "collector_address": "%[1]s"},
			"ledger": {"metadata": {"schema": 1}, "account_deposit": "0.5 IOV"}
		},
		"cash": [{"address": "%[1]s", "coins": ["10 IOV"]}],
		"ledger": {"kinds": [{"ticker": "GOLD", "name": "Gold", "issuer": "%[1]s"}]}
	}`, addr)

	metrics, err := utils.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	abciApp, err := GenerateApp("", log.NewNopLogger(), true, metrics, nil)
	require.NoError(t, err)
	node := &testNode{t: t, app: abciApp.(app.BaseApp)}
	node.app.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(genesis)})

	// no block was run yet, a check must fail cleanly instead of panic
	bz := node.sign(key, &Tx{SendMsg: &cash.SendMsg{
		Metadata:    &barter.Metadata{Schema: 1},
		Source:      addr,
		Destination: crypto.GenPrivKeyEd25519().PublicKey().Address(),
		Amount:      coin.NewCoinp(1, 0, "IOV"),
	}})
	require.NotPanics(t, func() { node.app.CheckTx(bz) })

	// once genesis is committed the same transaction is accepted
	node.block()
	chk := node.app.CheckTx(bz)
	require.Equal(t, uint32(0), chk.Code, chk.Log)
}

func TestTxGetMsg(t *testing.T) {
	var tx Tx
	_, err := tx.GetMsg()
	assert.Error(t, err)

	tx.SendMsg = &cash.SendMsg{}
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, "cash/send", msg.Path())

	tx.OpenEscrowMsg = &escrow.OpenMsg{}
	_, err = tx.GetMsg()
	assert.Error(t, err)
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	tx := &Tx{SendMsg: &cash.SendMsg{Memo: "hello"}}
	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	key := crypto.GenPrivKeyEd25519()
	sig, err := sigs.SignTx(key, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	signed, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signed)
}

func TestGenInitOptions(t *testing.T) {
	opts, err := GenInitOptions([]string{"ETH", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"})
	require.NoError(t, err)

	node := newTestNode(t, string(opts), nil)
	var wallet cash.Wallet
	addr, err := barter.ParseAddress("E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	require.NoError(t, err)
	node.query("/wallets", addr, &wallet)
	require.Len(t, wallet.Coins, 1)
	assert.Equal(t, "ETH", wallet.Coins[0].Ticker)

	_, err = GenInitOptions([]string{"not a ticker"})
	assert.Error(t, err)
}
