package app

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/bartertest"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const testChainID = "test-chain-1"

// initializer writes every top level genesis key into the store.
type initializer struct{}

func (initializer) FromGenesis(opts barter.Options, kv barter.KVStore) error {
	for k, v := range opts {
		if err := kv.Set([]byte("gen:"+k), v); err != nil {
			return err
		}
	}
	return nil
}

// memSink remembers all published events.
type memSink struct {
	mu     sync.Mutex
	events []TxEvent
	err    error
}

func (s *memSink) Publish(ctx context.Context, events []TxEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return s.err
}

// writeHandler stores the message path under the transaction bytes and
// tags the result.
type writeHandler struct{}

func (writeHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	return &barter.CheckResult{Log: barter.GetChainID(ctx), GasAllocated: 10}, nil
}

func (writeHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	path := barter.GetPath(tx)
	if err := db.Set([]byte("tx:"+path), []byte(barter.GetChainID(ctx))); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{
		Data: []byte(path),
		Tags: []cmn.KVPair{{Key: []byte("path"), Value: []byte(path)}},
	}, nil
}

// decode treats the bytes as a message path. "fail" is a broken
// transaction and "panic" crashes the decoder.
func decode(bz []byte) (barter.Tx, error) {
	switch string(bz) {
	case "fail":
		return nil, errors.Wrap(errors.ErrInput, "cannot decode")
	case "panic":
		panic("corrupt transaction")
	}
	return &bartertest.Tx{Msg: &bartertest.Msg{RoutePath: string(bz)}}, nil
}

func newTestApp(t *testing.T, cs iavl.CommitStore, sink EventSink) BaseApp {
	t.Helper()
	qr := barter.NewQueryRouter()
	orm.NewBucket("gen", orm.NewSimpleObj(nil, &barter.Metadata{})).Register("", qr)

	router := NewRouter()
	for _, p := range []string{"escrow/open", "escrow/cancel"} {
		router.Handle(&bartertest.Msg{RoutePath: p}, writeHandler{})
	}
	s := NewStoreApp("barter-test", cs, qr, context.Background()).
		WithInit(initializer{}).
		WithEventSink(sink)
	return NewBaseApp(s, decode, router, false)
}

func TestBaseApp(t *testing.T) {
	cs := iavl.MockCommitStore()
	sink := &memSink{}
	app := newTestApp(t, cs, sink)

	genesis, err := json.Marshal(map[string]interface{}{"alpha": 1})
	require.NoError(t, err)
	app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: genesis})
	assert.Equal(t, testChainID, app.GetChainID())

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, ChainID: testChainID}})
	chk := app.CheckTx([]byte("escrow/open"))
	require.Equal(t, uint32(0), chk.Code, chk.Log)
	assert.Equal(t, int64(10), chk.GasWanted)

	res := app.DeliverTx([]byte("escrow/open"))
	require.Equal(t, uint32(0), res.Code, res.Log)
	assert.Equal(t, []byte("escrow/open"), res.Data)

	res = app.DeliverTx([]byte("escrow/unknown"))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)
	res = app.DeliverTx([]byte("fail"))
	assert.Equal(t, errors.ErrInput.ABCICode(), res.Code)
	res = app.DeliverTx(nil)
	assert.Equal(t, errors.ErrInput.ABCICode(), res.Code)
	assert.Contains(t, res.Log, "empty transaction")
	require.NotPanics(t, func() { chk = app.CheckTx([]byte("panic")) })
	assert.Equal(t, uint32(1), chk.Code, "decoder panics are internal errors")

	app.EndBlock(abci.RequestEndBlock{Height: 1})
	commit := app.Commit()
	assert.NotEmpty(t, commit.Data)

	require.Len(t, sink.events, 1)
	assert.Equal(t, int64(1), sink.events[0].Height)
	assert.Equal(t, "escrow/open", sink.events[0].Path)

	v, err := cs.Get([]byte("tx:escrow/open"))
	require.NoError(t, err)
	assert.Equal(t, []byte(testChainID), v)

	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, commit.Data, info.LastBlockAppHash)

	// the chain id cannot be set twice
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: genesis})
	})

	// a restart loads the chain id from the store
	restarted := newTestApp(t, cs, nil)
	assert.Equal(t, testChainID, restarted.GetChainID())
}

func TestCheckBeforeFirstBlock(t *testing.T) {
	app := newTestApp(t, iavl.MockCommitStore(), nil)
	app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(`{}`)})

	var chk abci.ResponseCheckTx
	require.NotPanics(t, func() { chk = app.CheckTx([]byte("escrow/open")) })
	require.Equal(t, uint32(0), chk.Code, chk.Log)
	assert.Equal(t, testChainID, chk.Log)
	height, _ := barter.GetHeight(app.BlockContext())
	assert.Equal(t, int64(0), height)
}

func TestFailingSinkDoesNotHaltCommit(t *testing.T) {
	sink := &memSink{err: errors.ErrDatabase}
	app := newTestApp(t, iavl.MockCommitStore(), sink)
	app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(`{}`)})

	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	app.DeliverTx([]byte("escrow/cancel"))
	assert.NotPanics(t, func() { app.Commit() })
	assert.Len(t, sink.events, 1)
}

func TestInitChainRequiresAppState(t *testing.T) {
	app := newTestApp(t, iavl.MockCommitStore(), nil)
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: testChainID})
	})
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "bad", AppStateBytes: []byte(`{}`)})
	})
}

func TestQuery(t *testing.T) {
	app := newTestApp(t, iavl.MockCommitStore(), nil)
	app.InitChain(abci.RequestInitChain{ChainId: testChainID, AppStateBytes: []byte(`{"alpha": 1, "beta": 2}`)})
	app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	app.Commit()

	res := app.Query(abci.RequestQuery{Path: "/gen?prefix", Data: []byte("")})
	require.Equal(t, uint32(0), res.Code, res.Log)
	var keys, values ResultSet
	require.NoError(t, proto.Unmarshal(res.Key, &keys))
	require.NoError(t, proto.Unmarshal(res.Value, &values))
	models, err := JoinResults(&keys, &values)
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, []byte("1"), models[0].Value)
	assert.Equal(t, []byte("2"), models[1].Value)

	res = app.Query(abci.RequestQuery{Path: "/unknown"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), res.Code)
}
