package escrow

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	pathOpenMsg     = "escrow/open"
	pathCancelMsg   = "escrow/cancel"
	pathExchangeMsg = "escrow/exchange"

	maxSalt = 255
)

var _ barter.Msg = (*OpenMsg)(nil)

// Path returns the routing path for this message
func (OpenMsg) Path() string {
	return pathOpenMsg
}

// Validate makes sure that this is sensible
func (m *OpenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Depositor) != 0 {
		errs = errors.AppendField(errs, "Depositor", m.Depositor.Validate())
	}
	errs = errors.AppendField(errs, "AssetAKind", validateKind(m.AssetAKind))
	errs = errors.AppendField(errs, "AssetBKind", validateKind(m.AssetBKind))
	if m.AssetAKind == m.AssetBKind {
		errs = errors.Append(errs, errors.Field("AssetBKind", errors.ErrInput, "must differ from asset A"))
	}
	errs = errors.AppendField(errs, "DepositorAssetA", m.DepositorAssetA.Validate())
	errs = errors.AppendField(errs, "DepositorAssetB", m.DepositorAssetB.Validate())
	if m.AssetAAmount == 0 {
		errs = errors.Append(errs, errors.Field("AssetAAmount", errors.ErrAmount, "must be positive"))
	}
	if m.AssetBAmount == 0 {
		errs = errors.Append(errs, errors.Field("AssetBAmount", errors.ErrAmount, "must be positive"))
	}
	return errs
}

var _ barter.Msg = (*CancelMsg)(nil)

// Path returns the routing path for this message
func (CancelMsg) Path() string {
	return pathCancelMsg
}

// Validate makes sure that this is sensible
func (m *CancelMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "EscrowID", validateID(m.EscrowID))
	errs = errors.AppendField(errs, "DepositorAssetA", m.DepositorAssetA.Validate())
	errs = errors.AppendField(errs, "HoldingAccount", m.HoldingAccount.Validate())
	return errs
}

var _ barter.Msg = (*ExchangeMsg)(nil)

// Path returns the routing path for this message
func (ExchangeMsg) Path() string {
	return pathExchangeMsg
}

// Validate makes sure that this is sensible
func (m *ExchangeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "EscrowID", validateID(m.EscrowID))
	if len(m.Counterparty) != 0 {
		errs = errors.AppendField(errs, "Counterparty", m.Counterparty.Validate())
	}
	errs = errors.AppendField(errs, "DepositorAssetA", m.DepositorAssetA.Validate())
	errs = errors.AppendField(errs, "DepositorAssetB", m.DepositorAssetB.Validate())
	errs = errors.AppendField(errs, "CounterpartyAssetA", m.CounterpartyAssetA.Validate())
	errs = errors.AppendField(errs, "CounterpartyAssetB", m.CounterpartyAssetB.Validate())
	errs = errors.AppendField(errs, "HoldingAccount", m.HoldingAccount.Validate())
	return errs
}

// validateID returns an error if this is not an 8-byte ID
// as produced by the bucket sequence
func validateID(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "id missing")
	}
	if len(id) != 8 {
		return errors.Wrapf(errors.ErrInput, "id is invalid length (expected 8 bytes, got %d)", len(id))
	}
	return nil
}
