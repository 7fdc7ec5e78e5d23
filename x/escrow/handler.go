package escrow

import (
	"encoding/hex"
	"strconv"

	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/orm"
	"github.com/iov-one/barter/x"
	"github.com/iov-one/barter/x/cash"
	"github.com/iov-one/barter/x/ledger"
	cmn "github.com/tendermint/tendermint/libs/common"
)

const (
	// pay escrow cost up-front
	openEscrowCost     int64 = 300
	cancelEscrowCost   int64 = 100
	exchangeEscrowCost int64 = 200
)

// Tags attached to the result of every escrow transition.
const (
	TagAction       = "escrow.action"
	TagID           = "escrow.id"
	TagDepositor    = "escrow.depositor"
	TagCounterparty = "escrow.counterparty"
	TagState        = "escrow.state"
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r barter.Registry, auth x.Authenticator, assets ledger.AssetLedger) {
	bucket := NewBucket()
	r.Handle(&OpenMsg{}, OpenEscrowHandler{auth: auth, bucket: bucket, ledger: assets})
	r.Handle(&CancelMsg{}, CancelEscrowHandler{auth: auth, bucket: bucket, ledger: assets})
	r.Handle(&ExchangeMsg{}, ExchangeHandler{auth: auth, bucket: bucket, ledger: assets})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr barter.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

func tags(action string, id []byte, e *Escrow) []cmn.KVPair {
	res := []cmn.KVPair{
		{Key: []byte(TagAction), Value: []byte(action)},
		{Key: []byte(TagID), Value: []byte(hex.EncodeToString(id))},
		{Key: []byte(TagDepositor), Value: []byte(e.Depositor.String())},
		{Key: []byte(TagState), Value: []byte(strconv.Itoa(int(e.State)))},
	}
	if len(e.Counterparty) != 0 {
		res = append(res, cmn.KVPair{Key: []byte(TagCounterparty), Value: []byte(e.Counterparty.String())})
	}
	return res
}

// OpenEscrowHandler locks the deposited asset and records the escrow.
type OpenEscrowHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ledger ledger.AssetLedger
}

var _ barter.Handler = OpenEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h OpenEscrowHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: openEscrowCost}, nil
}

// Deliver moves the deposit into a new holding account if all
// preconditions are met.
func (h OpenEscrowHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, depositor, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	holdingKey := HoldingCondition(depositor, msg.AssetAKind)
	escrow := &Escrow{
		Metadata:        &barter.Metadata{Schema: 1},
		Depositor:       depositor,
		AssetAKind:      msg.AssetAKind,
		AssetBKind:      msg.AssetBKind,
		DepositorAssetA: msg.DepositorAssetA,
		DepositorAssetB: msg.DepositorAssetB,
		AssetAAmount:    msg.AssetAAmount,
		AssetBAmount:    msg.AssetBAmount,
		HoldingAccount:  holdingKey.Address(),
		State:           StateOpen,
	}
	id, err := h.bucket.Create(db, escrow)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}

	holding, err := h.ledger.CreateAccount(ctx, db, depositor, ProtocolAuthority().Address(), msg.AssetAKind, holdingKey)
	if err != nil {
		return nil, errors.Wrap(err, "cannot allocate holding account")
	}
	if err := h.ledger.Transfer(ctx, db, msg.DepositorAssetA, holding, msg.AssetAAmount); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}
	return &barter.DeliverResult{Data: id, Tags: tags("open", id, escrow)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h OpenEscrowHandler) validate(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*OpenMsg, barter.Address, error) {
	var msg OpenMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	depositor := msg.Depositor
	if len(depositor) == 0 {
		depositor = x.MainSigner(ctx, h.auth).Address()
	}
	if !h.auth.HasAddress(ctx, depositor) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
	}

	for _, kind := range []string{msg.AssetAKind, msg.AssetBKind} {
		if _, err := h.ledger.Kind(db, kind); err != nil {
			if errors.ErrNotFound.Is(err) {
				return nil, nil, errors.Wrapf(errors.ErrInput, "asset kind %q is not registered", kind)
			}
			return nil, nil, err
		}
	}

	accA, err := h.ownAccount(db, msg.DepositorAssetA, depositor, msg.AssetAKind)
	if err != nil {
		return nil, nil, errors.Wrap(err, "depositor asset A")
	}
	if _, err := h.ownAccount(db, msg.DepositorAssetB, depositor, msg.AssetBKind); err != nil {
		return nil, nil, errors.Wrap(err, "depositor asset B")
	}
	if accA.Amount < msg.AssetAAmount {
		return nil, nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", accA.Amount, msg.AssetAAmount)
	}

	holding := HoldingCondition(depositor, msg.AssetAKind).Address()
	if _, err := h.ledger.Account(db, holding); err == nil {
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "holding account %s", holding)
	} else if !errors.ErrNotFound.Is(err) {
		return nil, nil, err
	}
	return &msg, depositor, nil
}

// ownAccount loads the account and ensures it holds the given kind and
// belongs to the owner.
func (h OpenEscrowHandler) ownAccount(db barter.ReadOnlyKVStore, id, owner barter.Address, kind string) (*ledger.Account, error) {
	acc, err := h.ledger.Account(db, id)
	if err != nil {
		return nil, err
	}
	if acc.Kind != kind {
		return nil, errors.Wrapf(errors.ErrInput, "account holds %s, not %s", acc.Kind, kind)
	}
	if !acc.Owner.Equals(owner) {
		return nil, errors.Wrap(errors.ErrInput, "account owner mismatch")
	}
	return acc, nil
}

// loadOpen returns the escrow if it is open and its holding account
// still exists.
func loadOpen(db barter.ReadOnlyKVStore, b Bucket, l ledger.AssetLedger, id []byte) (*Escrow, *ledger.Account, error) {
	escrow, err := b.GetEscrow(db, id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot load escrow from the store")
	}
	if escrow.State != StateOpen {
		return nil, nil, errors.Wrapf(errors.ErrState, "escrow is %s", escrow.State)
	}
	holding, err := l.Account(db, escrow.HoldingAccount)
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, nil, errors.Wrap(errors.ErrState, "holding account is closed")
		}
		return nil, nil, err
	}
	return escrow, holding, nil
}

// checkHolding ensures the referenced holding account is the one recorded
// and that it is re-derivable from the escrow data.
func checkHolding(escrow *Escrow, ref barter.Address) error {
	derived := HoldingCondition(escrow.Depositor, escrow.AssetAKind).Address()
	if !ref.Equals(escrow.HoldingAccount) || !ref.Equals(derived) {
		return errors.Wrap(errors.ErrInput, "holding account mismatch")
	}
	return nil
}

// CancelEscrowHandler returns the locked asset to the depositor.
type CancelEscrowHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ledger ledger.AssetLedger
}

var _ barter.Handler = CancelEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h CancelEscrowHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver empties and closes the holding account and retires the escrow.
func (h CancelEscrowHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	msg, escrow, holding, auth, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	authCtx := withAuthority(ctx, auth)

	if holding.Amount > 0 {
		if err := h.ledger.Transfer(authCtx, db, escrow.HoldingAccount, escrow.DepositorAssetA, holding.Amount); err != nil {
			return nil, errors.Wrap(err, "cannot return deposit")
		}
	}
	caller := x.MainSigner(ctx, h.auth).Address()
	if err := h.ledger.CloseAccount(authCtx, db, escrow.HoldingAccount, caller); err != nil {
		return nil, errors.Wrap(err, "cannot close holding account")
	}

	escrow.State = StateCancelled
	if err := h.bucket.Save(db, orm.NewSimpleObj(msg.EscrowID, escrow)); err != nil {
		return nil, errors.Wrap(err, "cannot save escrow")
	}
	return &barter.DeliverResult{Tags: tags("cancel", msg.EscrowID, escrow)}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CancelEscrowHandler) validate(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*CancelMsg, *Escrow, *ledger.Account, barter.Condition, error) {
	var msg CancelMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, holding, err := loadOpen(db, h.bucket, h.ledger, msg.EscrowID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if !msg.DepositorAssetA.Equals(escrow.DepositorAssetA) {
		return nil, nil, nil, nil, errors.Wrap(errors.ErrInput, "depositor asset A mismatch")
	}
	if err := checkHolding(escrow, msg.HoldingAccount); err != nil {
		return nil, nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Depositor) {
		return nil, nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "depositor signature missing")
	}
	auth, err := VerifyAuthority(msg.Salt)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return &msg, escrow, holding, auth, nil
}

// ExchangeHandler settles an escrow with a counterparty.
type ExchangeHandler struct {
	auth   x.Authenticator
	bucket Bucket
	ledger ledger.AssetLedger
}

var _ barter.Handler = ExchangeHandler{}

type exchange struct {
	msg          *ExchangeMsg
	escrow       *Escrow
	holding      *ledger.Account
	counterparty barter.Address
	authority    barter.Condition
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ExchangeHandler) Check(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &barter.CheckResult{GasAllocated: exchangeEscrowCost}, nil
}

// Deliver swaps both assets, closes the holding account and retires the
// escrow.
func (h ExchangeHandler) Deliver(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*barter.DeliverResult, error) {
	ex, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	escrow := ex.escrow

	if err := h.ledger.Transfer(ctx, db, ex.msg.CounterpartyAssetB, escrow.DepositorAssetB, escrow.AssetBAmount); err != nil {
		return nil, errors.Wrap(err, "cannot pay depositor")
	}

	authCtx := withAuthority(ctx, ex.authority)
	if err := h.ledger.Transfer(authCtx, db, escrow.HoldingAccount, ex.msg.CounterpartyAssetA, escrow.AssetAAmount); err != nil {
		return nil, errors.Wrap(err, "cannot release deposit")
	}
	if surplus := ex.holding.Amount - escrow.AssetAAmount; surplus > 0 {
		if err := h.ledger.Transfer(authCtx, db, escrow.HoldingAccount, escrow.DepositorAssetA, surplus); err != nil {
			return nil, errors.Wrap(err, "cannot return surplus")
		}
	}

	if err := h.ledger.CloseAccount(authCtx, db, escrow.HoldingAccount, h.feePayer(ctx, tx)); err != nil {
		return nil, errors.Wrap(err, "cannot close holding account")
	}

	escrow.State = StateExchanged
	escrow.Counterparty = ex.counterparty
	if err := h.bucket.Save(db, orm.NewSimpleObj(ex.msg.EscrowID, escrow)); err != nil {
		return nil, errors.Wrap(err, "cannot save escrow")
	}
	return &barter.DeliverResult{Tags: tags("exchange", ex.msg.EscrowID, escrow)}, nil
}

// feePayer receives the holding account deposit. It is the fee payer of
// the transaction, or the main signer if no fee was declared.
func (h ExchangeHandler) feePayer(ctx barter.Context, tx barter.Tx) barter.Address {
	if ftx, ok := tx.(cash.FeeTx); ok {
		if payer := ftx.GetFees().GetPayer(); len(payer) != 0 {
			return payer
		}
	}
	return x.MainSigner(ctx, h.auth).Address()
}

// validate does all common pre-processing between Check and Deliver.
func (h ExchangeHandler) validate(ctx barter.Context, db barter.KVStore, tx barter.Tx) (*exchange, error) {
	var msg ExchangeMsg
	if err := barter.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	escrow, holding, err := loadOpen(db, h.bucket, h.ledger, msg.EscrowID)
	if err != nil {
		return nil, err
	}
	if !msg.DepositorAssetA.Equals(escrow.DepositorAssetA) {
		return nil, errors.Wrap(errors.ErrInput, "depositor asset A mismatch")
	}
	if !msg.DepositorAssetB.Equals(escrow.DepositorAssetB) {
		return nil, errors.Wrap(errors.ErrInput, "depositor asset B mismatch")
	}
	if err := checkHolding(escrow, msg.HoldingAccount); err != nil {
		return nil, err
	}

	counterparty := msg.Counterparty
	if len(counterparty) == 0 {
		counterparty = x.MainSigner(ctx, h.auth).Address()
	}
	accA, err := h.ledger.Account(db, msg.CounterpartyAssetA)
	if err != nil {
		return nil, errors.Wrap(err, "counterparty asset A")
	}
	if accA.Kind != escrow.AssetAKind {
		return nil, errors.Wrapf(errors.ErrInput, "counterparty asset A holds %s, not %s", accA.Kind, escrow.AssetAKind)
	}
	accB, err := h.ledger.Account(db, msg.CounterpartyAssetB)
	if err != nil {
		return nil, errors.Wrap(err, "counterparty asset B")
	}
	if accB.Kind != escrow.AssetBKind {
		return nil, errors.Wrapf(errors.ErrInput, "counterparty asset B holds %s, not %s", accB.Kind, escrow.AssetBKind)
	}
	if !accB.Owner.Equals(counterparty) {
		return nil, errors.Wrap(errors.ErrInput, "counterparty asset B owner mismatch")
	}
	if !h.auth.HasAddress(ctx, counterparty) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "counterparty signature missing")
	}
	if accB.Amount < escrow.AssetBAmount {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", accB.Amount, escrow.AssetBAmount)
	}
	if holding.Amount < escrow.AssetAAmount {
		return nil, errors.Wrapf(errors.ErrState, "holding %d, locked %d", holding.Amount, escrow.AssetAAmount)
	}
	auth, err := VerifyAuthority(msg.Salt)
	if err != nil {
		return nil, err
	}
	return &exchange{
		msg:          &msg,
		escrow:       escrow,
		holding:      holding,
		counterparty: counterparty,
		authority:    auth,
	}, nil
}
