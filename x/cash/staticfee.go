/*
FeeDecorator ensures that the fee can be deducted from the account. All
deducted fees are sent to the collector address.

Collector address and minimal fee are configured via the gconf package. If
the minimal fee is zero, no fees are required. If a currency is set on the
minimal fee, then all fees must be paid in that currency.

It uses auth to verify the source.
*/

package cash

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/x"
)

// FeeDecorator moves the transaction fee from the payer to the
// configured collector before the transaction is processed.
type FeeDecorator struct {
	auth x.Authenticator
	ctrl CoinMover
}

var _ barter.Decorator = FeeDecorator{}

// NewFeeDecorator returns a FeeDecorator with the given
// minimum fee, and all collected fees going to a
// default address.
func NewFeeDecorator(auth x.Authenticator, ctrl CoinMover) FeeDecorator {
	return FeeDecorator{
		auth: auth,
		ctrl: ctrl,
	}
}

// Check verifies and deducts fees before calling down the stack
func (d FeeDecorator) Check(ctx barter.Context, store barter.KVStore, tx barter.Tx, next barter.Checker) (*barter.CheckResult, error) {
	fee, err := d.chargeFee(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	if fee != nil {
		res.GasPayment += toPayment(*fee)
	}
	return res, nil
}

// Deliver verifies and deducts fees before calling down the stack
func (d FeeDecorator) Deliver(ctx barter.Context, store barter.KVStore, tx barter.Tx, next barter.Deliverer) (*barter.DeliverResult, error) {
	if _, err := d.chargeFee(ctx, store, tx); err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

// chargeFee moves the fee declared by the transaction to the collector.
// It returns the fee paid, or nil when no fee was paid.
func (d FeeDecorator) chargeFee(ctx barter.Context, store barter.KVStore, tx barter.Tx) (*coin.Coin, error) {
	conf, err := loadConf(store)
	if err != nil {
		return nil, err
	}
	finfo, err := d.extractFee(ctx, tx, conf)
	if err != nil {
		return nil, err
	}
	fee := finfo.GetFees()
	if coin.IsEmpty(fee) {
		return nil, nil
	}

	// verify we have access to the money
	if !d.auth.HasAddress(ctx, finfo.Payer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "fee payer signature missing")
	}
	if err := d.ctrl.MoveCoins(store, finfo.Payer, conf.CollectorAddress, *fee); err != nil {
		return nil, errors.Wrap(err, "cannot pay fee")
	}
	return fee, nil
}

func (d FeeDecorator) extractFee(ctx barter.Context, tx barter.Tx, conf *Configuration) (*FeeInfo, error) {
	var finfo *FeeInfo
	if ftx, ok := tx.(FeeTx); ok {
		payer := x.MainSigner(ctx, d.auth).Address()
		finfo = ftx.GetFees().DefaultPayer(payer)
	}

	fee := finfo.GetFees()
	if coin.IsEmpty(fee) {
		if coin.IsEmpty(conf.MinimalFee) {
			return finfo, nil
		}
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "minimal fee %s", conf.MinimalFee)
	}

	// make sure it is a valid fee (non-negative, going somewhere)
	if err := finfo.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid fee")
	}

	min := conf.MinimalFee
	if coin.IsEmpty(min) {
		return finfo, nil
	}
	if min.Ticker == "" {
		return nil, errors.Wrap(errors.ErrCurrency, "no ticker")
	}
	if !fee.SameType(*min) {
		return nil, errors.Wrapf(errors.ErrCurrency, "%s vs fee %s", min.Ticker, fee.Ticker)
	}
	if !fee.IsGTE(*min) {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "fee %s lower than %s", fee, min)
	}
	return finfo, nil
}

// toPayment calculates how much we prioritize the tx
// one point per fractional unit
func toPayment(fee coin.Coin) int64 {
	base := fee.Fractional
	base += fee.Whole * coin.FracUnit
	return base
}
