/*
Package app links together all the various components
to construct the barterd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/app"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/store/iavl"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/cash"
	"github.com/iov-one/barter/x/escrow"
	"github.com/iov-one/barter/x/ledger"
	"github.com/iov-one/barter/x/sigs"
	"github.com/iov-one/barter/x/utils"
)

// Authenticator returns the authentication used by all handlers: public
// key signatures, and the escrow authority once the escrow module
// verified it.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, escrow.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator, metrics utils.Metrics) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(authFn, cashController()),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

func cashController() cash.BaseController {
	return cash.NewController(cash.NewBucket())
}

// Router returns a router dispatching to the cash, ledger and escrow
// handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	ctrl := cashController()
	cash.RegisterRoutes(r, authFn, ctrl)
	assets := ledger.NewController(authFn, ctrl)
	ledger.RegisterRoutes(r, authFn, assets)
	escrow.RegisterRoutes(r, authFn, assets)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/kinds", "/accounts"
// and "/escrows"
func QueryRouter() barter.QueryRouter {
	r := barter.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		ledger.RegisterQuery,
		escrow.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(metrics utils.Metrics) barter.Handler {
	authFn := Authenticator()
	return Chain(authFn, metrics).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack(). Sink may be nil.
func Application(name string, h barter.Handler, tx barter.TxDecoder, dbPath string, debug bool, sink app.EventSink) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	if sink != nil {
		store = store.WithEventSink(sink)
	}
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (barter.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	kv, err := iavl.NewCommitStore(dir, name)
	if err != nil {
		return nil, err
	}
	return kv, nil
}
