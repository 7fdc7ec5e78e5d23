package ledger

import (
	"github.com/iov-one/barter"
	"github.com/iov-one/barter/errors"
)

const (
	pathCreateKindMsg    = "ledger/create_kind"
	pathMintMsg          = "ledger/mint"
	pathCreateAccountMsg = "ledger/create_account"
	pathTransferMsg      = "ledger/transfer"
	pathCloseAccountMsg  = "ledger/close_account"

	maxSeedSize = 32
	maxMemoSize = 128
)

var _ barter.Msg = (*CreateKindMsg)(nil)

func (CreateKindMsg) Path() string {
	return pathCreateKindMsg
}

func (m *CreateKindMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !IsTicker(m.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrInput, "invalid ticker %q", m.Ticker))
	}
	if !isName(m.Name) {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrInput, "invalid name %q", m.Name))
	}
	if len(m.Issuer) != 0 {
		errs = errors.AppendField(errs, "Issuer", m.Issuer.Validate())
	}
	return errs
}

var _ barter.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	return errs
}

var _ barter.Msg = (*CreateAccountMsg)(nil)

func (CreateAccountMsg) Path() string {
	return pathCreateAccountMsg
}

func (m *CreateAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	}
	if !IsTicker(m.Kind) {
		errs = errors.Append(errs, errors.Field("Kind", errors.ErrInput, "invalid ticker %q", m.Kind))
	}
	if len(m.Seed) > maxSeedSize {
		errs = errors.Append(errs, errors.Field("Seed", errors.ErrInput, "cannot be longer than %d", maxSeedSize))
	}
	return errs
}

var _ barter.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "cannot be longer than %d", maxMemoSize))
	}
	return errs
}

var _ barter.Msg = (*CloseAccountMsg)(nil)

func (CloseAccountMsg) Path() string {
	return pathCloseAccountMsg
}

func (m *CloseAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	if len(m.Destination) != 0 {
		errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	}
	return errs
}
