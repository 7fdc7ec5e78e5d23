package ledger

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const (
	createKindCost    int64 = 300
	mintCost          int64 = 100
	createAccountCost int64 = 200
	transferCost      int64 = 100
	closeAccountCost  int64 = 100
)

// RegisterQuery registers the kinds and accounts buckets under
// "/kinds" and "/accounts".
func RegisterQuery(qr barter.QueryRouter) {
	NewKindBucket().Register("kinds", qr)
	NewAccountBucket().Register("accounts", qr)
}

// RegisterRoutes registers handlers for all ledger messages.
func RegisterRoutes(r barter.Registry, auth x.Authenticator, ledger AssetLedger) {
	r.Handle(&CreateKindMsg{}, CreateKindHandler{auth: auth, kinds: NewKindBucket()})
	r.Handle(&MintMsg{}, MintHandler{ledger: ledger})
	r.Handle(&CreateAccountMsg{}, CreateAccountHandler{auth: auth, ledger: ledger})
	r.Handle(&TransferMsg{}, TransferHandler{ledger: ledger})
	r.Handle(&CloseAccountMsg{}, CloseAccountHandler{auth: auth, ledger: ledger})
}

// CreateKindHandler registers asset kinds.
type CreateKindHandler struct {
	auth  x.Authenticator
	kinds KindBucket
}

var _ barter.Handler = CreateKindHandler{}

func (h CreateKindHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: createKindCost}, nil
}

func (h CreateKindHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	kind, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.kinds.Create(db, kind); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: []byte(kind.Ticker)}, nil
}

func (h CreateKindHandler) validate(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*AssetKind, error) {
	var msg CreateKindMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	issuer := msg.Issuer
	if len(issuer) == 0 {
		issuer = x.MainSigner(ctx, h.auth).Address()
	}
	if !h.auth.HasAddress(ctx, issuer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "issuer signature missing")
	}
	kind := &AssetKind{
		Metadata: &barter.Metadata{Schema: 1},
		Ticker:   msg.Ticker,
		Name:     msg.Name,
		Issuer:   issuer,
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	return kind, nil
}

// MintHandler credits newly issued assets.
type MintHandler struct {
	ledger AssetLedger
}

var _ barter.Handler = MintHandler{}

func (h MintHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg MintMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &barter.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg MintMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ledger.Mint(ctx, db, msg.Account, msg.Amount); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{}, nil
}

// CreateAccountHandler allocates accounts.
type CreateAccountHandler struct {
	auth   x.Authenticator
	ledger AssetLedger
}

var _ barter.Handler = CreateAccountHandler{}

func (h CreateAccountHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg CreateAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.ledger.Kind(db, msg.Kind); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: createAccountCost}, nil
}

func (h CreateAccountHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg CreateAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	payer := x.MainSigner(ctx, h.auth).Address()
	owner := msg.Owner
	if len(owner) == 0 {
		owner = payer
	}
	key := AccountCondition(owner, msg.Kind, msg.Seed)
	id, err := h.ledger.CreateAccount(ctx, db, payer, owner, msg.Kind, key)
	if err != nil {
		return nil, err
	}
	return &barter.DeliverResult{Data: id}, nil
}

// TransferHandler moves assets between accounts.
type TransferHandler struct {
	ledger AssetLedger
}

var _ barter.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg TransferMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &barter.CheckResult{GasAllocated: transferCost}, nil
}

func (h TransferHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg TransferMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ledger.Transfer(ctx, db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	res := &barter.DeliverResult{
		Tags: []cmn.KVPair{
			{Key: []byte("ledger.source"), Value: []byte(msg.Source.String())},
			{Key: []byte("ledger.destination"), Value: []byte(msg.Destination.String())},
		},
	}
	return res, nil
}

// CloseAccountHandler removes empty accounts.
type CloseAccountHandler struct {
	auth   x.Authenticator
	ledger AssetLedger
}

var _ barter.Handler = CloseAccountHandler{}

func (h CloseAccountHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	var msg CloseAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &barter.CheckResult{GasAllocated: closeAccountCost}, nil
}

func (h CloseAccountHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	var msg CloseAccountMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	dest := msg.Destination
	if len(dest) == 0 {
		dest = x.MainSigner(ctx, h.auth).Address()
	}
	if err := h.ledger.CloseAccount(ctx, db, msg.Account, dest); err != nil {
		return nil, err
	}
	return &barter.DeliverResult{}, nil
}
