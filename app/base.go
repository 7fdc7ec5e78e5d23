package app

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp runs decoded transactions through the handler stack, on top
// of the state and queries of StoreApp. Every successful delivery is
// recorded as an event for the indexer sink.
type BaseApp struct {
	*StoreApp
	decoder barter.TxDecoder
	handler barter.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

func NewBaseApp(store *StoreApp, decoder barter.TxDecoder, handler barter.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// CheckTx runs the handler against the mempool state.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, ctx, err := b.prepare(txBytes, "check_tx")
	if err != nil {
		return barter.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return barter.CheckOrError(res, err, b.debug)
}

// DeliverTx runs the handler against the block state.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, ctx, err := b.prepare(txBytes, "deliver_tx")
	if err != nil {
		return barter.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err == nil {
		b.AddEvent(barter.GetPath(tx), res)
	}
	return barter.DeliverOrError(res, err, b.debug)
}

// prepare decodes txBytes and builds the context of one ABCI call,
// tagged with the call and message route for logging. A panicking
// decoder is reported as ErrPanic.
func (b BaseApp) prepare(txBytes []byte, call string) (tx barter.Tx, ctx barter.Context, err error) {
	if len(txBytes) == 0 {
		return nil, nil, errors.Wrap(errors.ErrInput, "empty transaction")
	}
	defer errors.Recover(&err)
	if tx, err = b.decoder(txBytes); err != nil {
		return nil, nil, err
	}
	ctx = barter.WithLogInfo(b.BlockContext(), "call", call, "path", barter.GetPath(tx))
	return tx, ctx, nil
}
