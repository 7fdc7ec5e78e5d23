package cash

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/coin"
	"github.com/iov-one/barter/errors"
)

const (
	sendTxCost int64 = 100

	maxMemoSize int = 128
)

var _ barter.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message
func (SendMsg) Path() string {
	return "cash/send"
}

// Validate makes sure that this is sensible
func (s *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "non-positive amount"))
	} else {
		errs = errors.AppendField(errs, "Amount", s.Amount.Validate())
	}
	errs = errors.AppendField(errs, "Source", s.Source.Validate())
	errs = errors.AppendField(errs, "Destination", s.Destination.Validate())
	if len(s.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "cannot be longer than %d", maxMemoSize))
	}
	return errs
}

// FeeTx exposes information about the fees that
// should be paid
type FeeTx interface {
	GetFees() *FeeInfo
}

// DefaultPayer makes sure there is a payer.
// If it was already set, returns f.
// If none was set, returns a new FeeInfo, with the
// New address set
func (f *FeeInfo) DefaultPayer(addr barter.Address) *FeeInfo {
	if len(f.GetPayer()) != 0 {
		return f
	}
	return &FeeInfo{
		Payer: addr,
		Fees:  f.GetFees(),
	}
}

// Validate makes sure that this is sensible.
// Note that fee must be present, even if 0
func (f *FeeInfo) Validate() error {
	if f == nil {
		return errors.Wrap(errors.ErrInput, "nil fee info")
	}
	var errs error
	if fee := f.GetFees(); fee == nil {
		errs = errors.Append(errs, errors.Field("Fees", errors.ErrAmount, "fees nil"))
	} else {
		errs = errors.AppendField(errs, "Fees", fee.Validate())
		if !fee.IsNonNegative() {
			errs = errors.Append(errs, errors.Field("Fees", errors.ErrAmount, "negative fees"))
		}
	}
	return errors.AppendField(errs, "Payer", f.Payer.Validate())
}
